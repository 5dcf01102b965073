package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/claimwise/site/internal/platform/icons"
)

// IconSprite renders the hidden SVG sprite that Icon references.
func IconSprite() templ.Component {
	return templ.Raw(icons.LucideSprite())
}

func iconSymbol(id icons.ID) string {
	return icons.LucideSymbolID(icons.LucideNameOrDefault(id))
}

// classes joins the non-empty class names.
func classes(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, " ")
}
