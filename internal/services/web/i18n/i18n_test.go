package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrefersQueryThenCookieThenHeader(t *testing.T) {
	t.Parallel()

	spanish := language.MustParse("es-US")
	english := language.MustParse("en-US")

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantTag     language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", wantTag: english},
		{name: "query", target: "/?lang=es", cookie: "en-US", wantTag: spanish, wantPersist: true},
		{name: "invalid query falls through to cookie", target: "/?lang=xx-YY", cookie: "es-US", wantTag: spanish},
		{name: "cookie beats header", target: "/", cookie: "en-US", accept: "es-MX", wantTag: english},
		{name: "header", target: "/", accept: "es-MX,es;q=0.9", wantTag: spanish},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.wantTag {
				t.Fatalf("tag = %v, want %v", tag, tc.wantTag)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %t, want %t", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=es-US", nil)
	rr := httptest.NewRecorder()
	printer, lang := ResolveLocalizer(rr, req)
	if lang != "es-US" {
		t.Fatalf("lang = %q, want %q", lang, "es-US")
	}
	if got := printer.Sprintf("core.nav.home"); got != "Inicio" {
		t.Fatalf("core.nav.home = %q, want %q", got, "Inicio")
	}
	if cookie := rr.Header().Get("Set-Cookie"); !strings.Contains(cookie, LangCookieName+"=es-US") {
		t.Fatalf("Set-Cookie = %q", cookie)
	}
}

func TestLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	options := LanguageOptions(Printer(language.MustParse("en-US")), "es-US", "/specialties/urgent-care", "")
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("options = %#v", options)
	}
	if options[0].Label != "English" {
		t.Fatalf("label = %q, want English", options[0].Label)
	}
	if options[1].URL != "/specialties/urgent-care?lang=es-US" {
		t.Fatalf("url = %q", options[1].URL)
	}
}

func TestLanguageURLKeepsQuery(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/contact", "specialty=endocrinology", "en-US")
	if got != "/contact?lang=en-US&specialty=endocrinology" {
		t.Fatalf("LanguageURL() = %q", got)
	}
	if got := LanguageURL("", "", "es-US"); got != "/?lang=es-US" {
		t.Fatalf("LanguageURL() = %q", got)
	}
}
