package templates

import (
	"strings"

	"github.com/claimwise/site/internal/platform/icons"
	"github.com/claimwise/site/internal/services/web/content"
)

// HeroProps configures the page banner.
type HeroProps struct {
	Eyebrow   string
	Title     string
	Highlight string
	Subtitle  string
	Icon      icons.ID
	Primary   content.Link
	Secondary content.Link
}

func hasLink(link content.Link) bool {
	return strings.TrimSpace(link.Label) != "" && strings.TrimSpace(link.URL) != ""
}

// AnimatedSectionProps configures a content section wrapper.
type AnimatedSectionProps struct {
	ID       string
	Heading  string
	Subtitle string
	// Animation names the CSS entrance effect, fade-up by default.
	Animation string
	// DelayMS staggers the entrance; zero omits the attribute.
	DelayMS int
	Class   string
}

func sectionAnimation(animation string) string {
	if animation == "" {
		return "fade-up"
	}
	return animation
}

// sectionHeadingID links the section to its heading when both exist.
func sectionHeadingID(props AnimatedSectionProps) string {
	if props.ID == "" || props.Heading == "" {
		return ""
	}
	return props.ID + "-heading"
}

// CardProps configures one grid card.
type CardProps struct {
	Icon        icons.ID
	Title       string
	Description string
	Bullets     []string
	Impact      string
	ImpactLabel string
	Tone        content.Tone
}

func cardTone(tone content.Tone) content.Tone {
	if tone == "" {
		return content.ToneNeutral
	}
	return tone
}

func hasQuote(testimonial content.Testimonial) bool {
	return strings.TrimSpace(testimonial.Quote) != ""
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, sep)
}

// CTAProps configures the closing call to action.
type CTAProps struct {
	Heading      string
	Body         string
	PrimaryLabel string
	PrimaryURL   string
	PhoneLabel   string
	PhoneURI     string
}
