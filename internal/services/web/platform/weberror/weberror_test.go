package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webi18n "github.com/claimwise/site/internal/services/web/i18n"
	module "github.com/claimwise/site/internal/services/web/module"
	apperrors "github.com/claimwise/site/internal/services/web/platform/errors"
	"golang.org/x/text/language"
)

func TestShouldRenderAppError(t *testing.T) {
	tests := map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusForbidden:           false,
		http.StatusNotFound:            true,
		http.StatusTooManyRequests:     false,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessage(t *testing.T) {
	loc := webi18n.Printer(language.AmericanEnglish)
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
	keyed := apperrors.EK(apperrors.KindRateLimited, "errors.rate_limited", "too many")
	if got := PublicMessage(loc, keyed); !strings.Contains(got, "Too many requests") {
		t.Fatalf("PublicMessage(keyed) = %q", got)
	}
	plain := apperrors.E(apperrors.KindForbidden, "internal detail")
	if got := PublicMessage(loc, plain); got != http.StatusText(http.StatusForbidden) {
		t.Fatalf("PublicMessage(plain) = %q", got)
	}
}

func TestWriteAppErrorRendersNotFoundPage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, httptest.NewRequest(http.MethodGet, "/missing", nil), http.StatusNotFound, module.Dependencies{})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Page not found") {
		t.Fatalf("body missing heading: %q", body)
	}
	if !strings.Contains(body, `data-status="404"`) {
		t.Fatal("expected error state marker")
	}
}

func TestWriteAppErrorCoercesNonPageStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, module.Dependencies{})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestWriteModuleErrorUsesPlainTextForClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	err := apperrors.EK(apperrors.KindForbidden, "errors.forbidden", "csrf failed")
	WriteModuleError(rec, httptest.NewRequest(http.MethodPost, "/contact", nil), err, module.Dependencies{})

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "This form has expired") {
		t.Fatalf("body = %q", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "<html") {
		t.Fatal("expected plain text body")
	}
}
