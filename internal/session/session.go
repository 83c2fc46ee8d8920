package session

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
)

// ErrNoToken means the caller is unauthenticated: no cookie file, or the
// named cookie is absent from it.
var ErrNoToken = errors.New("auth token not found")

// Store yields the bearer token for outbound requests.
type Store interface {
	Token() (string, error)
	Clear()
}

// CookieStore reads a Cookie-header-format line from a file maintained by
// the external login flow and extracts one named cookie. The file is
// re-read on every call so a rotated token is picked up without restart.
type CookieStore struct {
	Path       string
	CookieName string

	mu sync.Mutex
}

func NewCookieStore(path, cookieName string) *CookieStore {
	return &CookieStore{Path: path, CookieName: cookieName}
}

func (s *CookieStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return "", ErrNoToken
	}
	tok := cookieValue(strings.TrimSpace(string(raw)), s.CookieName)
	if tok == "" {
		return "", ErrNoToken
	}
	return tok, nil
}

// Clear truncates the cookie file. The session is unrecoverable after a
// 401; a fresh login has to rewrite it.
func (s *CookieStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Truncate(s.Path, 0)
}

func cookieValue(header, name string) string {
	if header == "" {
		return ""
	}
	req := http.Request{Header: http.Header{"Cookie": {header}}}
	c, err := req.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// StaticStore holds a fixed token. For tests and one-shot runs.
type StaticStore struct {
	mu      sync.Mutex
	token   string
	cleared bool
}

func NewStaticStore(token string) *StaticStore { return &StaticStore{token: token} }

func (s *StaticStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cleared || s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *StaticStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = true
}

func (s *StaticStore) Cleared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}
