// Package pagerender centralizes full-page rendering for web modules.
package pagerender

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/claimwise/site/internal/services/web/i18n"
	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/platform/httpx"
	"github.com/claimwise/site/internal/services/web/routepath"
	"github.com/claimwise/site/internal/services/web/seo"
	"github.com/claimwise/site/internal/services/web/templates"
)

// Page describes one full-page response.
type Page struct {
	// Loc and Lang come from webi18n.ResolveLocalizer; both are resolved
	// when Loc is nil.
	Loc  webi18n.Localizer
	Lang string

	Title       string
	Description string
	Keywords    []string
	// CanonicalPath defaults to the request path.
	CanonicalPath string
	OGType        string
	StatusCode    int
	Head          templ.Component
	Body          templ.Component
}

// WritePage renders page inside the shared layout. Rendering is buffered so a
// template failure never leaves a partial document on the wire.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}

	currentPath, rawQuery := requestPath(r)
	canonicalPath := page.CanonicalPath
	if canonicalPath == "" {
		canonicalPath = currentPath
	}
	description := page.Description
	if description == "" {
		description = templates.T(loc, "core.meta.description")
	}

	props := templates.LayoutProps{
		Lang: lang,
		Loc:  loc,
		SEO: templates.SEOProps{
			Title:        page.Title,
			Description:  description,
			Keywords:     page.Keywords,
			CanonicalURL: seo.AbsoluteURL(deps.PublicBaseURL, canonicalPath),
			Type:         page.OGType,
		},
		CurrentPath: currentPath,
		Languages:   languageOptions(loc, lang, currentPath, rawQuery),
		FooterLinks: footerLinks(deps),
		Notice:      readNotice(w, r, deps, loc),
		Head:        page.Head,
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := templates.Layout(props).Render(ctx, &buf); err != nil {
		return fmt.Errorf("render page %q: %w", currentPath, err)
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}

func requestPath(r *http.Request) (string, string) {
	if r == nil || r.URL == nil {
		return routepath.Root, ""
	}
	path := r.URL.Path
	if path == "" {
		path = routepath.Root
	}
	return path, r.URL.RawQuery
}

func languageOptions(loc webi18n.Localizer, lang string, path string, rawQuery string) []templates.LanguageOption {
	options := webi18n.LanguageOptions(loc, lang, path, rawQuery)
	out := make([]templates.LanguageOption, 0, len(options))
	for _, option := range options {
		out = append(out, templates.LanguageOption{
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	return out
}

func footerLinks(deps module.Dependencies) []templates.NavLink {
	specialties := deps.ContentCatalog().Specialties()
	links := make([]templates.NavLink, 0, len(specialties))
	for _, specialty := range specialties {
		links = append(links, templates.NavLink{Label: specialty.Name, URL: routepath.Specialty(specialty.Key)})
	}
	return links
}

func readNotice(w http.ResponseWriter, r *http.Request, deps module.Dependencies, loc webi18n.Localizer) *templates.Notice {
	notice, ok := deps.Flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	return &templates.Notice{Kind: string(notice.Kind), Message: templates.T(loc, notice.Key)}
}
