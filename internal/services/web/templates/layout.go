package templates

import "github.com/a-h/templ"

// LanguageOption is one entry in the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// NavLink is a labeled site link.
type NavLink struct {
	Label string
	URL   string
}

// Notice is a one-time message shown above the page content.
type Notice struct {
	Kind    string
	Message string
}

// LayoutProps configures the document shell.
type LayoutProps struct {
	Lang        string
	Loc         Localizer
	SEO         SEOProps
	CurrentPath string
	Languages   []LanguageOption
	// FooterLinks lists specialty pages in the footer.
	FooterLinks []NavLink
	Notice      *Notice
	// Head renders extra elements at the end of the document head.
	Head templ.Component
}

func documentLang(lang string) string {
	if lang == "" {
		return "en-US"
	}
	return lang
}

// layoutSEO defaults the Open Graph locale to the document language.
func layoutSEO(props LayoutProps) SEOProps {
	seo := props.SEO
	if seo.Locale == "" {
		seo.Locale = documentLang(props.Lang)
	}
	return seo
}

func noticeKind(notice *Notice) string {
	if notice.Kind == "" {
		return "info"
	}
	return notice.Kind
}
