// Package httpclient is the single gateway to the painel backend. Every
// request carries the bearer token from the session cookie; every non-2xx
// response is normalized into an apierror before callers see it.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acadpainel/academico-sync/internal/apierror"
	"github.com/acadpainel/academico-sync/internal/ctxutil"
	"github.com/acadpainel/academico-sync/internal/metrics"
	"github.com/acadpainel/academico-sync/internal/session"
)

const DefaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
	Debug   bool
	// OnUnauthorized runs once per client lifetime, on the first 401.
	// The session is considered unrecoverable; there is no silent retry.
	OnUnauthorized func()
}

type Client struct {
	base   string
	http   *http.Client
	sess   session.Store
	log    *zap.Logger
	debug  bool
	onAuth func()
	once   sync.Once
}

func New(cfg Config, sess session.Store, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		sess:   sess,
		log:    log,
		debug:  cfg.Debug,
		onAuth: cfg.OnUnauthorized,
	}
	c.http = &http.Client{
		Timeout:   timeout,
		Transport: &authTransport{client: c, next: http.DefaultTransport},
	}
	return c
}

// authTransport attaches the bearer token and a request id, and logs both
// directions when debug is on. An Authorization header already set by the
// caller is never overwritten.
type authTransport struct {
	client *Client
	next   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c := t.client
	if req.Header.Get("Authorization") == "" {
		if tok, err := c.sess.Token(); err == nil && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	if c.debug {
		fields := []zap.Field{zap.String("method", req.Method),
			zap.String("url", req.URL.String()), zap.String("request_id", reqID)}
		if op, ok := ctxutil.Op(req.Context()); ok {
			fields = append(fields, zap.String("op", op))
		}
		if id, ok := ctxutil.UserID(req.Context()); ok {
			fields = append(fields, zap.String("user_id", id))
		}
		c.log.Debug("api request", fields...)
	}
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		// network errors pass through unmodified
		return nil, err
	}
	metrics.ObserveAPIRequest(req.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	if resp.StatusCode == http.StatusUnauthorized {
		c.sess.Clear()
		c.once.Do(func() {
			c.log.Warn("session expired, backend returned 401", zap.String("path", req.URL.Path))
			if c.onAuth != nil {
				c.onAuth()
			}
		})
	}
	if c.debug {
		c.log.Debug("api response", zap.Int("status", resp.StatusCode),
			zap.String("url", req.URL.String()), zap.String("request_id", reqID))
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		// 401 session teardown already happened in the transport
		return apierror.FromResponse(resp.StatusCode, backendMessage(raw))
	}
	if out == nil {
		return nil
	}
	switch dst := out.(type) {
	case *[]byte:
		*dst = raw
		return nil
	default:
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode: %w", method, path, err)
		}
		return nil
	}
}

// Do sends a caller-built request through the interceptor chain, 401
// session teardown included. Headers already set on the request,
// Authorization included, stay untouched.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.http.Do(req)
}

// GetRaw fetches the unparsed body, for list endpoints whose envelope
// shape varies.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Ping probes backend reachability without auth semantics. Any HTTP
// response counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

func backendMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(raw))
}
