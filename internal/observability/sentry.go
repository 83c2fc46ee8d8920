package observability

import (
	"errors"
	"net"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/acadpainel/academico-sync/internal/apierror"
)

func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// System failures only: network, timeout, 5xx. Validation and client-side
// 4xx are user-facing noise and never reach sentry.
func isSystemErr(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case apierror.KindNetwork:
			return true
		case apierror.KindServer:
			return apiErr.Status >= 500
		}
		return false
	}
	return false
}

func CaptureErr(err error) {
	if isSystemErr(err) {
		sentry.CaptureException(err)
	}
}
