// Package seo builds crawler-facing documents: absolute URLs, the sitemap
// and the robots policy.
package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/claimwise/site/internal/services/web/content"
	"github.com/claimwise/site/internal/services/web/routepath"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Entry is one sitemap location.
type Entry struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// AbsoluteURL joins a site-relative path onto the public base URL.
// Absolute and tel/mailto inputs are returned unchanged.
func AbsoluteURL(baseURL string, path string) string {
	path = strings.TrimSpace(path)
	if parsed, err := url.Parse(path); err == nil && parsed.Scheme != "" {
		return path
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if path == "" {
		path = routepath.Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// Entries lists every public page: home, specialty index, each specialty and contact.
func Entries(catalog *content.Catalog) []Entry {
	entries := []Entry{
		{Path: routepath.Root, ChangeFreq: "weekly", Priority: 1.0},
		{Path: routepath.SpecialtiesPrefix, ChangeFreq: "weekly", Priority: 0.9},
	}
	for _, specialty := range catalog.Specialties() {
		entries = append(entries, Entry{
			Path:       specialty.SEO.CanonicalPath,
			ChangeFreq: "monthly",
			Priority:   0.8,
		})
	}
	entries = append(entries, Entry{Path: routepath.Contact, ChangeFreq: "yearly", Priority: 0.5})
	return entries
}

// Sitemap renders the XML sitemap for entries under baseURL.
func Sitemap(baseURL string, entries []Entry) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNamespace, URLs: make([]urlEntry, 0, len(entries))}
	for _, entry := range entries {
		item := urlEntry{Loc: AbsoluteURL(baseURL, entry.Path), ChangeFreq: entry.ChangeFreq}
		if entry.Priority > 0 {
			item.Priority = fmt.Sprintf("%.1f", entry.Priority)
		}
		set.URLs = append(set.URLs, item)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// Robots returns a robots.txt body that allows crawling and links the sitemap.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("\nSitemap: " + AbsoluteURL(baseURL, routepath.Sitemap) + "\n")
	return b.String()
}
