package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	module "github.com/claimwise/site/internal/services/web/module"
)

func mountHandler(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{PublicBaseURL: "https://billing.example"})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/" {
		t.Fatalf("prefix = %q, want /", mount.Prefix)
	}
	return mount.Handler
}

func TestHomeListsEverySpecialty(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.Find("#specialties a.specialty-card").Length(); got != 6 {
		t.Fatalf("specialty cards = %d, want 6", got)
	}
	if href, _ := doc.Find(`a[href="/specialties/physical-therapy"]`).First().Attr("href"); href == "" {
		t.Fatal("expected physical therapy link")
	}
}

func TestHealthReportsOK(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("payload = %v", payload)
	}
}

func TestSitemapAndRobots(t *testing.T) {
	t.Parallel()

	h := mountHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("sitemap status = %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/xml") {
		t.Fatalf("sitemap content type = %q", got)
	}
	if !strings.Contains(rr.Body.String(), "<loc>https://billing.example/specialties/mental-health</loc>") {
		t.Fatalf("sitemap missing specialty: %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if !strings.Contains(rr.Body.String(), "Sitemap: https://billing.example/sitemap.xml") {
		t.Fatalf("robots = %q", rr.Body.String())
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pricing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `data-status="404"`) {
		t.Fatal("expected not found page")
	}
}
