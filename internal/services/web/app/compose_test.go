package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/claimwise/site/internal/services/web/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return m.mount, m.err
}

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "two", mount: module.Mount{Prefix: "one/", Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicates prefix") {
		t.Fatalf("expected duplicate prefix error, got %v", err)
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := (Composer{}).Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatal("expected nil module error")
	}
}

func TestComposeRejectsInvalidMounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		module stubModule
	}{
		{name: "missing prefix", module: stubModule{id: "a", mount: module.Mount{Handler: statusHandler(http.StatusOK)}}},
		{name: "missing handler", module: stubModule{id: "b", mount: module.Mount{Prefix: "/b/"}}},
		{name: "mount error", module: stubModule{id: "c", err: errors.New("boom")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := (Composer{}).Compose(ComposeInput{Modules: []module.Module{tc.module}}); err == nil {
				t.Fatal("expected compose error")
			}
		})
	}
}

func TestComposeMountsSubtreeAndExactPaths(t *testing.T) {
	t.Parallel()

	h, err := BuildRootHandler(Config{
		Modules: []module.Module{
			stubModule{id: "specialties", mount: module.Mount{Prefix: "/specialties/", Handler: statusHandler(http.StatusNoContent)}},
			stubModule{id: "contact", mount: module.Mount{Prefix: "/contact", Handler: statusHandler(http.StatusAccepted)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/specialties/urgent-care", want: http.StatusNoContent},
		{method: http.MethodGet, path: "/specialties", want: http.StatusMovedPermanently},
		{method: http.MethodPost, path: "/contact", want: http.StatusAccepted},
		{method: http.MethodGet, path: "/contact/extra", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestComposeRedirectsBareSubtreePathPermanently(t *testing.T) {
	t.Parallel()

	h, err := BuildRootHandler(Config{
		Modules: []module.Module{
			stubModule{id: "specialties", mount: module.Mount{Prefix: "/specialties/", Handler: statusHandler(http.StatusNoContent)}},
			stubModule{id: "guides", mount: module.Mount{Prefix: "/guides/", Handler: statusHandler(http.StatusNoContent)}},
			stubModule{id: "guides-index", mount: module.Mount{Prefix: "/guides", Handler: statusHandler(http.StatusAccepted)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/specialties", nil))
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("GET /specialties status = %d, want %d", rr.Code, http.StatusMovedPermanently)
	}
	if got := rr.Header().Get("Location"); got != "/specialties/" {
		t.Fatalf("Location = %q, want /specialties/", got)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/guides", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("GET /guides status = %d, want exact mount to win", rr.Code)
	}
}
