// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root               = "/"
	Health             = "/up"
	Robots             = "/robots.txt"
	Sitemap            = "/sitemap.xml"
	StaticPrefix       = "/static/"
	Contact            = "/contact"
	Specialties        = "/specialties"
	SpecialtiesPrefix  = "/specialties/"
	SpecialtyPattern   = SpecialtiesPrefix + "{key}"
	ContactSpecialty   = "specialty"
	LanguageQueryParam = "lang"
)

// Specialty returns the landing page route for a specialty key.
func Specialty(key string) string {
	return SpecialtiesPrefix + escapeSegment(key)
}

// ContactFor returns the contact route with the specialty pre-selected.
func ContactFor(specialtyKey string) string {
	specialtyKey = strings.TrimSpace(specialtyKey)
	if specialtyKey == "" {
		return Contact
	}
	return Contact + "?" + url.Values{ContactSpecialty: {specialtyKey}}.Encode()
}

// Static returns the route for an embedded static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
