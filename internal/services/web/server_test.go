package web

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/claimwise/site/internal/services/web/content"
	webi18n "github.com/claimwise/site/internal/services/web/i18n"
	"github.com/claimwise/site/internal/services/web/platform/httpx"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(Config{PublicBaseURL: "https://billing.example/"})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestRoutesRespondWithExpectedStatus(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	tests := []struct {
		path string
		want int
	}{
		{path: "/", want: http.StatusOK},
		{path: "/specialties", want: http.StatusMovedPermanently},
		{path: "/specialties/", want: http.StatusOK},
		{path: "/specialties/unknown", want: http.StatusNotFound},
		{path: "/contact", want: http.StatusOK},
		{path: "/sitemap.xml", want: http.StatusOK},
		{path: "/robots.txt", want: http.StatusOK},
		{path: "/up", want: http.StatusOK},
		{path: "/static/site.css", want: http.StatusOK},
		{path: "/static/site.js", want: http.StatusOK},
		{path: "/static/missing.css", want: http.StatusNotFound},
		{path: "/static/", want: http.StatusNotFound},
		{path: "/nope", want: http.StatusNotFound},
	}
	for _, key := range content.Default().Keys() {
		tests = append(tests, struct {
			path string
			want int
		}{path: "/specialties/" + key, want: http.StatusOK})
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.want)
		}
	}
}

func TestSpecialtiesRedirectTarget(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/specialties", nil))
	if got := rr.Header().Get("Location"); got != "/specialties/" {
		t.Fatalf("Location = %q, want /specialties/", got)
	}
}

func TestStaticAssetsAreCacheable(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	if got := rr.Header().Get("Cache-Control"); got != staticCacheControl {
		t.Fatalf("Cache-Control = %q", got)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestResponsesCarryRequestIDAndCompress(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/specialties/urgent-care", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, req)

	if rr.Header().Get(httpx.RequestIDHeader) == "" {
		t.Fatal("expected request id header")
	}
	if got := rr.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	reader, err := gzip.NewReader(rr.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	if !strings.Contains(string(body), "application/ld+json") {
		t.Fatal("expected structured data in decompressed page")
	}
}

func TestLanguageQueryPersistsCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?lang=es-US", nil))
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "es-US" {
		t.Fatalf("lang = %q, want es-US", lang)
	}
	if got := doc.Find(".nav-links a").First().Text(); got != "Inicio" {
		t.Fatalf("home nav = %q, want Inicio", got)
	}
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == webi18n.LangCookieName && cookie.Value == "es-US" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected language cookie")
	}
}

func TestNewHandlerValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing base url", cfg: Config{}},
		{name: "relative base url", cfg: Config{PublicBaseURL: "/site"}},
		{name: "unsupported scheme", cfg: Config{PublicBaseURL: "ftp://billing.example"}},
		{name: "short csrf key", cfg: Config{PublicBaseURL: "https://billing.example", CSRFKey: []byte("short")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewHandler(tc.cfg); err == nil {
				t.Fatal("expected config error")
			}
		})
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{PublicBaseURL: "http://localhost:8080"}); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestNewServerLogsThroughConfiguredLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	srv, err := NewServer(context.Background(), Config{
		HTTPAddr:      "127.0.0.1:0",
		PublicBaseURL: "http://localhost:8080",
		Logger:        log.New(&buf, "", 0),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(srv.Close)
	if !strings.Contains(buf.String(), "inquiry storage disabled") {
		t.Fatalf("log output = %q, want storage notice", buf.String())
	}
	if srv.loggerOrDefault() != srv.logger {
		t.Fatal("server should keep the configured logger")
	}
}

func TestContactSubmissionPersistsToSQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv, err := NewServer(ctx, Config{
		HTTPAddr:      "127.0.0.1:0",
		PublicBaseURL: "http://localhost:8080",
		DBPath:        filepath.Join(t.TempDir(), "nested", "web.db"),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(srv.Close)
	h := srv.httpServer.Handler

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/contact?specialty=gastroenterology", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rr.Code)
	}
	cookies := rr.Result().Cookies()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	token, _ := doc.Find(`input[name="csrf_token"]`).Attr("value")

	form := url.Values{
		"csrf_token": {token},
		"name":       {"Priya Raman"},
		"email":      {"priya@example.org"},
		"specialty":  {"gastroenterology"},
		"message":    {"Our denial rate doubled this quarter."},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("POST status = %d, want 303; body=%s", rr.Code, rr.Body.String())
	}

	inquiries, err := srv.store.ListInquiries(ctx, 10)
	if err != nil {
		t.Fatalf("ListInquiries() error = %v", err)
	}
	if len(inquiries) != 1 || inquiries[0].SpecialtyKey != "gastroenterology" {
		t.Fatalf("inquiries = %+v", inquiries)
	}
}
