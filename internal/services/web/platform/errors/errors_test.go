package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "plain", err: stderrors.New("boom"), want: http.StatusInternalServerError},
		{name: "invalid", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "forbidden", err: E(KindForbidden, "no"), want: http.StatusForbidden},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "rate limited", err: E(KindRateLimited, "slow down"), want: http.StatusTooManyRequests},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "too large", err: E(KindTooLarge, "big"), want: http.StatusRequestEntityTooLarge},
		{name: "out of range kind", err: E(Kind(99), "?"), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("outer: %w", E(KindNotFound, "missing")), want: http.StatusNotFound},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%s: HTTPStatus() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got := KindRateLimited.String(); got != "rate_limited" {
		t.Fatalf("String() = %q", got)
	}
	if got := Kind(42).String(); got != "unknown" {
		t.Fatalf("String() = %q", got)
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("handler: %w", EK(KindRateLimited, " errors.rate_limited ", "too many requests"))
	if got := LocalizationKey(err); got != "errors.rate_limited" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(stderrors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey() = %q, want empty", got)
	}
}

func TestErrorText(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk full")
	err := Wrap(KindUnavailable, "save inquiry", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}
	if err.Error() != "save inquiry: disk full" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if got := E(KindForbidden, "").Error(); got != "forbidden" {
		t.Fatalf("Error() = %q, want kind name", got)
	}
	if Wrap(KindUnknown, "noop", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestAs(t *testing.T) {
	t.Parallel()

	e, ok := As(fmt.Errorf("ctx: %w", EK(KindInvalidInput, "contact.error.email", "bad email")))
	if !ok || e.Kind != KindInvalidInput || e.Key != "contact.error.email" {
		t.Fatalf("As() = %#v, %v", e, ok)
	}
	if _, ok := As(stderrors.New("plain")); ok {
		t.Fatal("plain error should not match")
	}
}
