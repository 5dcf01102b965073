// Package i18n defines the languages the site is published in.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	englishUS = language.MustParse("en-US")
	spanishUS = language.MustParse("es-US")

	supported = []language.Tag{englishUS, spanishUS}
	matcher   = language.NewMatcher(supported)
)

// SupportedTags returns the published language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return englishUS
}

// ParseTag resolves a user-supplied value to a supported tag.
// Bare base languages ("es") resolve to their regional variant.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for _, candidate := range supported {
		if candidate == tag {
			return candidate, true
		}
	}
	for _, candidate := range supported {
		candidateBase, _ := candidate.Base()
		if candidateBase == base {
			return candidate, true
		}
	}
	return language.Und, false
}

// MatchTags picks the best supported tag for an Accept-Language preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}

// LabelKey returns the catalog key naming a supported language.
func LabelKey(tag language.Tag) string {
	return "core.lang." + strings.ReplaceAll(strings.ToLower(tag.String()), "-", "_")
}
