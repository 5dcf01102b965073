package templates

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/claimwise/site/internal/platform/branding"
	"github.com/claimwise/site/internal/platform/icons"
	"github.com/claimwise/site/internal/services/web/content"
	"github.com/google/go-cmp/cmp"
)

func renderString(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func parseHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func physicalTherapyView(t *testing.T) SpecialtyView {
	t.Helper()
	catalog := content.Default()
	specialty, ok := catalog.Specialty("physical-therapy")
	if !ok {
		t.Fatal("expected physical-therapy specialty")
	}
	return SpecialtyView{Specialty: specialty, Related: catalog.RelatedLinks(specialty.Key)}
}

func TestSpecialtyPageRendersSectionsInOrder(t *testing.T) {
	doc := parseHTML(t, renderString(t, SpecialtyPage(physicalTherapyView(t))))

	var got []string
	doc.Find("article.specialty > section").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			got = append(got, id)
			return
		}
		class, _ := s.Attr("class")
		got = append(got, class)
	})
	want := []string{"hero", "pain-points", "solutions", "services", "benefits", "testimonial", "related", "cta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecialtyPageRendersCatalogContent(t *testing.T) {
	view := physicalTherapyView(t)
	doc := parseHTML(t, renderString(t, SpecialtyPage(view)))

	if got := strings.TrimSpace(doc.Find("h1.hero-title").Text()); !strings.Contains(got, view.Specialty.Hero.Title) {
		t.Fatalf("hero title = %q, want to contain %q", got, view.Specialty.Hero.Title)
	}
	if got := doc.Find("#pain-points article.card").Length(); got != len(view.Specialty.PainPoints) {
		t.Fatalf("pain point cards = %d, want %d", got, len(view.Specialty.PainPoints))
	}
	if got := doc.Find("#services article.card").Length(); got != len(view.Specialty.Services) {
		t.Fatalf("service cards = %d, want %d", got, len(view.Specialty.Services))
	}
	if got := doc.Find("#related a.related-link").Length(); got != len(view.Related) {
		t.Fatalf("related links = %d, want %d", got, len(view.Related))
	}
	ctaHref, _ := doc.Find("section.cta a.button--primary").Attr("href")
	if ctaHref != "/contact?specialty=physical-therapy" {
		t.Fatalf("cta href = %q", ctaHref)
	}
	phoneHref, _ := doc.Find("section.cta a.button--secondary").Attr("href")
	if phoneHref != branding.PhoneURI {
		t.Fatalf("phone href = %q, want %q", phoneHref, branding.PhoneURI)
	}
}

func TestBenefitsPanelRendersMetricsLiterally(t *testing.T) {
	metrics := []content.BenefitMetric{
		{Metric: "98%", Label: "Clean claim rate", Icon: icons.TrendingUp},
		{Metric: "0", Label: "Missed <authorizations>"},
		{Metric: "$1.2M", Label: "Recovered & reprocessed"},
	}
	doc := parseHTML(t, renderString(t, BenefitsPanel(metrics)))

	var got []content.BenefitMetric
	doc.Find("li.benefit").Each(func(_ int, s *goquery.Selection) {
		got = append(got, content.BenefitMetric{
			Metric: s.Find(".benefit-metric").Text(),
			Label:  s.Find(".benefit-label").Text(),
		})
	})
	want := []content.BenefitMetric{
		{Metric: "98%", Label: "Clean claim rate"},
		{Metric: "0", Label: "Missed <authorizations>"},
		{Metric: "$1.2M", Label: "Recovered & reprocessed"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("benefits mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecialtyPageRenderingIsIdempotent(t *testing.T) {
	view := physicalTherapyView(t)
	page := func() templ.Component {
		layout := Layout(LayoutProps{
			Lang: "en-US",
			SEO:  SEOProps{Title: view.Specialty.SEO.Title, Description: view.Specialty.SEO.Description},
			Head: SpecialtySchema(SchemaProps{Name: view.Specialty.Name, Services: view.Specialty.Services}),
		})
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return layout.Render(templ.WithChildren(ctx, SpecialtyPage(view)), w)
		})
	}
	first := renderString(t, page())
	second := renderString(t, page())
	if first != second {
		t.Fatal("expected identical markup across renders")
	}
}

func TestEmptyPropsRenderWithoutError(t *testing.T) {
	for name, component := range map[string]templ.Component{
		"benefits":    BenefitsPanel(nil),
		"testimonial": TestimonialQuote(content.Testimonial{}),
		"related":     RelatedServices(nil, nil),
		"cards":       CardGrid(nil),
		"schema":      SpecialtySchema(SchemaProps{}),
	} {
		t.Run(name, func(t *testing.T) {
			if got := renderString(t, component); got != "" {
				t.Fatalf("render = %q, want empty", got)
			}
		})
	}
	if got := renderString(t, SpecialtyPage(SpecialtyView{})); !strings.Contains(got, `class="specialty"`) {
		t.Fatalf("empty specialty page = %q", got)
	}
}

func TestAnimatedSectionWrapsChildren(t *testing.T) {
	section := AnimatedSection(AnimatedSectionProps{ID: "services", Heading: "Included", DelayMS: 100})
	var buf bytes.Buffer
	if err := section.Render(templ.WithChildren(context.Background(), templ.Raw(`<p id="inner">x</p>`)), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := parseHTML(t, buf.String())

	sel := doc.Find("section#services")
	if labelledBy, _ := sel.Attr("aria-labelledby"); labelledBy != "services-heading" {
		t.Fatalf("aria-labelledby = %q", labelledBy)
	}
	if delay, _ := sel.Attr("data-animate-delay"); delay != "100" {
		t.Fatalf("delay = %q", delay)
	}
	if got := sel.Find("h2#services-heading").Text(); got != "Included" {
		t.Fatalf("heading = %q", got)
	}
	if sel.Find("p#inner").Length() != 1 {
		t.Fatal("expected children inside section")
	}

	doc = parseHTML(t, renderString(t, AnimatedSection(AnimatedSectionProps{Heading: "No id"})))
	if _, ok := doc.Find("section").Attr("aria-labelledby"); ok {
		t.Fatal("aria-labelledby set without a section id")
	}
}

func TestSEOHeadEmitsCanonicalAndOpenGraph(t *testing.T) {
	markup := renderString(t, SEOHead(SEOProps{
		Title:        "Physical Therapy Billing",
		Description:  "PT billing services",
		Keywords:     []string{"pt billing", " ", "therapy cap"},
		CanonicalURL: "https://example.com/specialties/physical-therapy",
		Locale:       "es-US",
	}))
	doc := parseHTML(t, "<html><head>"+markup+"</head></html>")

	if got := doc.Find("title").Text(); got != "Physical Therapy Billing | "+branding.AppName {
		t.Fatalf("title = %q", got)
	}
	checks := map[string]string{
		`link[rel="canonical"]`:         "https://example.com/specialties/physical-therapy",
		`meta[name="keywords"]`:         "pt billing, therapy cap",
		`meta[property="og:locale"]`:    "es_US",
		`meta[property="og:type"]`:      "website",
		`meta[name="description"]`:      "PT billing services",
		`meta[property="og:site_name"]`: branding.AppName,
	}
	for selector, want := range checks {
		sel := doc.Find(selector)
		attr := "content"
		if strings.HasPrefix(selector, "link") {
			attr = "href"
		}
		got, _ := sel.Attr(attr)
		if got != want {
			t.Fatalf("%s = %q, want %q", selector, got, want)
		}
	}
}

func TestSpecialtySchemaDescribesService(t *testing.T) {
	view := physicalTherapyView(t)
	markup := renderString(t, SpecialtySchema(SchemaProps{
		Name:             view.Specialty.Name,
		URL:              "https://example.com/specialties/physical-therapy",
		MedicalSpecialty: view.Specialty.MedicalSpecialty,
		Services:         view.Specialty.Services,
	}))
	doc := parseHTML(t, markup)
	script := doc.Find(`script[type="application/ld+json"]`)
	if script.Length() != 1 {
		t.Fatalf("json-ld scripts = %d, want 1", script.Length())
	}

	var payload struct {
		Type     string `json:"@type"`
		Name     string `json:"name"`
		Provider struct {
			Type             string `json:"@type"`
			MedicalSpecialty string `json:"medicalSpecialty"`
		} `json:"provider"`
		Catalog struct {
			Items []json.RawMessage `json:"itemListElement"`
		} `json:"hasOfferCatalog"`
	}
	if err := json.Unmarshal([]byte(script.Text()), &payload); err != nil {
		t.Fatalf("decode json-ld: %v", err)
	}
	if payload.Type != "Service" || payload.Name != view.Specialty.Name {
		t.Fatalf("schema = %+v", payload)
	}
	if payload.Provider.Type != "MedicalBusiness" || payload.Provider.MedicalSpecialty != "PhysicalTherapy" {
		t.Fatalf("provider = %+v", payload.Provider)
	}
	if len(payload.Catalog.Items) != len(view.Specialty.Services) {
		t.Fatalf("offers = %d, want %d", len(payload.Catalog.Items), len(view.Specialty.Services))
	}
}

func TestIconFallsBackForUnknownID(t *testing.T) {
	doc := parseHTML(t, renderString(t, Icon("not-an-icon", "")))
	href, _ := doc.Find("use").Attr("href")
	if href != "#lucide-sparkle" {
		t.Fatalf("href = %q, want #lucide-sparkle", href)
	}
}

func TestUnsafeLinksAreSanitized(t *testing.T) {
	doc := parseHTML(t, renderString(t, RelatedServices(nil, []content.RelatedLink{{Title: "Bad", URL: "javascript:alert(1)"}})))
	href, _ := doc.Find("a.related-link").Attr("href")
	if href != string(templ.FailedSanitizationURL) {
		t.Fatalf("href = %q", href)
	}
}

func TestLayoutRendersChildrenNoticeAndLanguages(t *testing.T) {
	layout := Layout(LayoutProps{
		Lang:        "es-US",
		CurrentPath: "/contact",
		Notice:      &Notice{Kind: "success", Message: "Sent"},
		Languages: []LanguageOption{
			{Tag: "en-US", Label: "English", URL: "/contact?lang=en-US"},
			{Tag: "es-US", Label: "Español", URL: "/contact?lang=es-US", Active: true},
		},
		FooterLinks: []NavLink{{Label: "Urgent Care Billing", URL: "/specialties/urgent-care"}},
	})
	child := templ.Raw(`<p id="child">hello</p>`)
	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(context.Background(), child), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := parseHTML(t, buf.String())

	if lang, _ := doc.Find("html").Attr("lang"); lang != "es-US" {
		t.Fatalf("lang = %q", lang)
	}
	if doc.Find("main#main #child").Length() != 1 {
		t.Fatal("expected child inside main")
	}
	if got := doc.Find(".toast--success").Text(); got != "Sent" {
		t.Fatalf("notice = %q", got)
	}
	if current, _ := doc.Find(`.nav-links a[aria-current="page"]`).Attr("href"); current != "/contact" {
		t.Fatalf("current nav = %q", current)
	}
	if active, _ := doc.Find(`.lang-switcher a[aria-current="true"]`).Attr("hreflang"); active != "es-US" {
		t.Fatalf("active language = %q", active)
	}
	if doc.Find(`symbol#lucide-phone`).Length() != 1 {
		t.Fatal("expected icon sprite in layout")
	}
	if doc.Find(`.footer-specialties a[href="/specialties/urgent-care"]`).Length() != 1 {
		t.Fatal("expected footer specialty link")
	}
}

func TestContactPagePreselectsSpecialtyAndShowsErrors(t *testing.T) {
	view := ContactView{
		Specialties:   content.Default().Specialties(),
		Form:          ContactForm{Name: "Dana", Specialty: "urgent-care", Message: "<hi>"},
		Errors:        map[string]string{FieldEmail: "Please enter a valid email address."},
		CSRFFieldName: "csrf_token",
		CSRFToken:     "token-123",
	}
	doc := parseHTML(t, renderString(t, ContactPage(view)))

	if got, _ := doc.Find(`select[name="specialty"] option[selected]`).Attr("value"); got != "urgent-care" {
		t.Fatalf("selected specialty = %q", got)
	}
	if got, _ := doc.Find(`input[name="csrf_token"]`).Attr("value"); got != "token-123" {
		t.Fatalf("csrf token = %q", got)
	}
	if got, _ := doc.Find(`input[name="name"]`).Attr("value"); got != "Dana" {
		t.Fatalf("name value = %q", got)
	}
	if got := doc.Find(`textarea[name="message"]`).Text(); got != "<hi>" {
		t.Fatalf("message = %q", got)
	}
	if got := doc.Find("#contact-email-error").Text(); got != "Please enter a valid email address." {
		t.Fatalf("email error = %q", got)
	}
	if doc.Find(".field--invalid").Length() != 1 {
		t.Fatalf("invalid fields = %d, want 1", doc.Find(".field--invalid").Length())
	}
}

func TestComposePageTitle(t *testing.T) {
	tests := map[string]string{
		"":                              branding.AppName,
		"Contact":                       "Contact | " + branding.AppName,
		"Contact | " + branding.AppName: "Contact | " + branding.AppName,
		"Contact - " + branding.AppName: "Contact | " + branding.AppName,
	}
	for input, want := range tests {
		if got := ComposePageTitle(input); got != want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestErrorPageUsesStatusCopy(t *testing.T) {
	doc := parseHTML(t, renderString(t, ErrorPage(ErrorView{StatusCode: 404})))
	if got := doc.Find("h1").Text(); got != "errors.not_found.title" {
		t.Fatalf("heading = %q", got)
	}
	doc = parseHTML(t, renderString(t, ErrorPage(ErrorView{StatusCode: 503})))
	if got := doc.Find("h1").Text(); got != "errors.server.title" {
		t.Fatalf("heading = %q", got)
	}
}
