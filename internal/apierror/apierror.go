package apierror

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// Kind classifies a failure for display and reporting decisions.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNetwork      Kind = "network"
	KindUnauthorized Kind = "unauthorized"
	KindServer       Kind = "server"
	KindUnknown      Kind = "unknown"
)

const genericMessage = "erro desconhecido"

// Error is the single shape every transport failure is normalized into.
// Status is zero when no HTTP response was received.
type Error struct {
	Message string
	Status  int
	Kind    Kind
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, status int, message string) *Error {
	if message == "" {
		message = genericMessage
	}
	return &Error{Message: message, Status: status, Kind: kind}
}

// FromResponse builds the error for a non-2xx response. The backend body,
// when it is a {message} envelope, wins over the generic status text.
func FromResponse(status int, backendMessage string) *Error {
	msg := strings.TrimSpace(backendMessage)
	if msg == "" {
		msg = http.StatusText(status)
	}
	kind := KindServer
	if status == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	return New(kind, status, msg)
}

// Normalize maps any error from the HTTP layer into *Error. Errors that are
// already *Error pass through unchanged.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return New(KindNetwork, 0, "tempo de resposta esgotado")
		}
		return New(KindNetwork, 0, "falha de conexão com o servidor")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return New(KindNetwork, 0, "tempo de resposta esgotado")
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return New(KindUnknown, 0, genericMessage)
	}
	return New(KindUnknown, 0, msg)
}

// Translate re-specializes a normalized error for one call-site. Lookup
// order: status table, then case-insensitive keyword match against the
// backend message, then the normalized message itself. Validation errors
// are returned as-is: they are already human readable.
func Translate(err error, statusTable map[int]string, keywords map[string]string) string {
	e := Normalize(err)
	if e == nil {
		return ""
	}
	if e.Kind == KindValidation {
		return e.Message
	}
	if msg, ok := statusTable[e.Status]; ok && e.Status != 0 {
		return msg
	}
	lower := strings.ToLower(e.Message)
	for kw, msg := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return msg
		}
	}
	return e.Message
}

func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnauthorized
}
