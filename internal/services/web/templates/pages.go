package templates

import (
	"net/http"
	"strings"

	"github.com/claimwise/site/internal/platform/branding"
	"github.com/claimwise/site/internal/platform/icons"
	"github.com/claimwise/site/internal/services/web/content"
	"github.com/claimwise/site/internal/services/web/routepath"
)

// SpecialtyView carries everything a specialty landing page renders.
type SpecialtyView struct {
	Loc       Localizer
	Specialty content.Specialty
	Related   []content.RelatedLink
}

func specialtyHero(specialty content.Specialty) HeroProps {
	return HeroProps{
		Eyebrow:   specialty.Hero.Eyebrow,
		Title:     specialty.Hero.Title,
		Highlight: specialty.Hero.Highlight,
		Subtitle:  specialty.Hero.Subtitle,
		Icon:      specialty.Icon,
		Primary:   specialty.Hero.PrimaryCTA,
		Secondary: specialty.Hero.SecondaryCTA,
	}
}

// specialtySection configures an optional landing page section. The heading
// key follows the section id.
func specialtySection(view SpecialtyView, id string) AnimatedSectionProps {
	loc := view.Loc
	props := AnimatedSectionProps{
		ID:      id,
		Heading: T(loc, "web.section."+strings.ReplaceAll(id, "-", "_")+".heading"),
	}
	switch id {
	case "pain-points":
		props.Subtitle = T(loc, "web.section.pain_points.subtitle", view.Specialty.Name)
	case "solutions", "services":
		props.DelayMS = 100
	case "benefits":
		props.Class = "section--accent"
	case "testimonial":
		props.Animation = "fade-in"
	}
	return props
}

func painPointCards(loc Localizer, points []content.PainPoint) []CardProps {
	cards := make([]CardProps, 0, len(points))
	for _, point := range points {
		cards = append(cards, CardProps{
			Icon:        point.Icon,
			Title:       point.Title,
			Description: point.Description,
			Impact:      point.Impact,
			ImpactLabel: T(loc, "web.card.impact"),
			Tone:        point.Tone,
		})
	}
	return cards
}

func solutionCards(solutions []content.Solution) []CardProps {
	cards := make([]CardProps, 0, len(solutions))
	for _, solution := range solutions {
		cards = append(cards, CardProps{
			Icon:        icons.Check,
			Title:       solution.Title,
			Description: solution.Description,
			Bullets:     solution.Benefits,
			Tone:        content.ToneEmerald,
		})
	}
	return cards
}

func serviceCards(services []content.ServiceOffering) []CardProps {
	cards := make([]CardProps, 0, len(services))
	for _, service := range services {
		cards = append(cards, CardProps{
			Icon:        icons.Clipboard,
			Title:       service.Title,
			Description: service.Description,
			Bullets:     service.Features,
		})
	}
	return cards
}

func specialtyCTA(loc Localizer, specialty content.Specialty) CTAProps {
	return contactCTA(loc, specialty.CTA.Heading, specialty.CTA.Body, routepath.ContactFor(specialty.Key))
}

// contactCTA falls back to the generic copy when heading or body is empty.
func contactCTA(loc Localizer, heading string, body string, contactURL string) CTAProps {
	if heading == "" {
		heading = T(loc, "web.cta.heading")
	}
	if body == "" {
		body = T(loc, "web.cta.body")
	}
	return CTAProps{
		Heading:      heading,
		Body:         body,
		PrimaryLabel: T(loc, "web.cta.primary"),
		PrimaryURL:   contactURL,
		PhoneLabel:   T(loc, "web.cta.call", branding.PhoneDisplay),
		PhoneURI:     branding.PhoneURI,
	}
}

// SpecialtyListView carries the cards shown on the home and index pages.
type SpecialtyListView struct {
	Loc         Localizer
	Specialties []content.Specialty
}

func homeHero(loc Localizer) HeroProps {
	return HeroProps{
		Eyebrow:   branding.AppName,
		Title:     T(loc, "web.home.heading"),
		Subtitle:  T(loc, "web.home.subtitle"),
		Icon:      icons.Stethoscope,
		Primary:   content.Link{Label: T(loc, "web.cta.primary"), URL: routepath.Contact},
		Secondary: content.Link{Label: T(loc, "web.cta.call", branding.PhoneDisplay), URL: branding.PhoneURI},
	}
}

// ErrorView describes an error page.
type ErrorView struct {
	Loc        Localizer
	StatusCode int
}

// ErrorPageTitle returns the localized page title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "errors.not_found.title")
	}
	return T(loc, "errors.server.title")
}

func errorPageBody(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "errors.not_found.body")
	}
	return T(loc, "errors.server.body")
}
