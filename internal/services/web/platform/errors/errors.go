// Package errors classifies handler failures so each maps to one HTTP
// status and, optionally, one catalog key safe to show visitors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind is the failure class.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindForbidden
	KindNotFound
	KindRateLimited
	KindUnavailable
	KindTooLarge
)

var kinds = [...]struct {
	name   string
	status int
}{
	KindUnknown:      {"unknown", http.StatusInternalServerError},
	KindInvalidInput: {"invalid_input", http.StatusBadRequest},
	KindForbidden:    {"forbidden", http.StatusForbidden},
	KindNotFound:     {"not_found", http.StatusNotFound},
	KindRateLimited:  {"rate_limited", http.StatusTooManyRequests},
	KindUnavailable:  {"unavailable", http.StatusServiceUnavailable},
	KindTooLarge:     {"too_large", http.StatusRequestEntityTooLarge},
}

func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return kinds[KindUnknown].name
}

// Status is the HTTP status for k.
func (k Kind) Status() int {
	if int(k) < len(kinds) {
		return kinds[k].status
	}
	return http.StatusInternalServerError
}

// Error is a classified failure. Key, when set, names a catalog message;
// Message is for logs only.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// E returns a classified error.
func E(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// EK returns a classified error carrying a catalog key.
func EK(kind Kind, key string, message string) error {
	return &Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap classifies err. It returns nil when err is nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if !stderrors.As(err, &target) {
		return nil, false
	}
	return target, true
}

// LocalizationKey returns the catalog key of err, or "".
func LocalizationKey(err error) string {
	if e, ok := As(err); ok {
		return e.Key
	}
	return ""
}

// HTTPStatus maps err to a response status; unclassified errors are 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if e, ok := As(err); ok {
		return e.Kind.Status()
	}
	return http.StatusInternalServerError
}
