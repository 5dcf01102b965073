package seo

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/claimwise/site/internal/services/web/content"
	"github.com/google/go-cmp/cmp"
)

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "https://example.com", path: "/contact", want: "https://example.com/contact"},
		{base: "https://example.com/", path: "/contact", want: "https://example.com/contact"},
		{base: "https://example.com", path: "", want: "https://example.com/"},
		{base: "https://example.com", path: "specialties/", want: "https://example.com/specialties/"},
		{base: "https://example.com", path: "tel:+18885550142", want: "tel:+18885550142"},
		{base: "https://example.com", path: "https://other.example/x", want: "https://other.example/x"},
	}
	for _, tc := range tests {
		if got := AbsoluteURL(tc.base, tc.path); got != tc.want {
			t.Fatalf("AbsoluteURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}

func TestEntriesCoverEveryPublicPage(t *testing.T) {
	catalog := content.Default()
	entries := Entries(catalog)

	var paths []string
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	want := []string{"/", "/specialties/"}
	for _, specialty := range catalog.Specialties() {
		want = append(want, "/specialties/"+specialty.Key)
	}
	want = append(want, "/contact")
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestSitemapListsAbsoluteLocations(t *testing.T) {
	body, err := Sitemap("https://billing.example", []Entry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1},
		{Path: "/specialties/urgent-care"},
	})
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}
	if !strings.HasPrefix(string(body), "<?xml") {
		t.Fatalf("expected xml header, got %q", string(body[:20]))
	}

	var decoded struct {
		XMLName xml.Name `xml:"urlset"`
		URLs    []struct {
			Loc      string `xml:"loc"`
			Priority string `xml:"priority"`
		} `xml:"url"`
	}
	if err := xml.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("decode sitemap: %v", err)
	}
	if decoded.XMLName.Space != sitemapNamespace {
		t.Fatalf("namespace = %q", decoded.XMLName.Space)
	}
	if len(decoded.URLs) != 2 {
		t.Fatalf("urls = %d, want 2", len(decoded.URLs))
	}
	if decoded.URLs[0].Loc != "https://billing.example/" || decoded.URLs[0].Priority != "1.0" {
		t.Fatalf("first url = %+v", decoded.URLs[0])
	}
	if decoded.URLs[1].Loc != "https://billing.example/specialties/urgent-care" || decoded.URLs[1].Priority != "" {
		t.Fatalf("second url = %+v", decoded.URLs[1])
	}
}

func TestRobotsPointsAtSitemap(t *testing.T) {
	body := Robots("https://billing.example/")
	if !strings.Contains(body, "Sitemap: https://billing.example/sitemap.xml\n") {
		t.Fatalf("robots = %q", body)
	}
	if !strings.HasPrefix(body, "User-agent: *\n") {
		t.Fatalf("robots = %q", body)
	}
}
