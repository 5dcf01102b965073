package pagerender

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/platform/flash"
	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
)

func TestWritePageRendersLayoutAroundBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/contact?lang=es-US", nil)
	rec := httptest.NewRecorder()

	err := WritePage(rec, req, module.Dependencies{PublicBaseURL: "https://billing.example"}, Page{
		Title:      "Contacto",
		StatusCode: http.StatusCreated,
		Body:       templ.Raw(`<p id="body">hola</p>`),
	})
	if err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "es-US" {
		t.Fatalf("lang = %q, want es-US", lang)
	}
	if doc.Find("main #body").Length() != 1 {
		t.Fatal("expected body inside main")
	}
	if canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href"); canonical != "https://billing.example/contact" {
		t.Fatalf("canonical = %q", canonical)
	}
	if got := doc.Find(".footer-specialties a").Length(); got == 0 {
		t.Fatal("expected footer specialty links")
	}
	if got := doc.Find(`meta[name="description"]`).AttrOr("content", ""); strings.TrimSpace(got) == "" {
		t.Fatal("expected default meta description")
	}
}

func TestWritePageConsumesFlashNotice(t *testing.T) {
	deps := module.Dependencies{Flash: flash.NewStore([]byte("0123456789abcdef0123456789abcdef"), requestmeta.SchemePolicy{})}
	seed := httptest.NewRecorder()
	deps.Flash.Write(seed, httptest.NewRequest(http.MethodPost, "/contact", nil), flash.Success("contact.notice.sent"))
	cookies := seed.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	if err := WritePage(rec, req, deps, Page{Title: "Contact"}); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Find(".toast--success").Length() != 1 {
		t.Fatal("expected success toast")
	}
	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestWritePageNilWriter(t *testing.T) {
	if err := WritePage(nil, nil, module.Dependencies{}, Page{}); err != nil {
		t.Fatalf("WritePage(nil) = %v", err)
	}
}
