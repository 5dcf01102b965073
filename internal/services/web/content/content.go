// Package content holds the specialty landing-page catalog.
//
// Every record is static copy loaded once from YAML documents embedded in the
// binary. Records are read-only after load; accessors hand out copies so
// handlers and templates cannot mutate shared state.
package content

import "github.com/claimwise/site/internal/platform/icons"

// Tone is a color token applied to pain-point cards.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneRose    Tone = "rose"
	ToneAmber   Tone = "amber"
	ToneSky     Tone = "sky"
	ToneEmerald Tone = "emerald"
	ToneViolet  Tone = "violet"
)

func (t Tone) known() bool {
	switch t {
	case ToneNeutral, ToneRose, ToneAmber, ToneSky, ToneEmerald, ToneViolet:
		return true
	default:
		return false
	}
}

// PainPoint describes a billing problem a practice faces.
type PainPoint struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Impact      string   `yaml:"impact"`
	Icon        icons.ID `yaml:"icon"`
	Tone        Tone     `yaml:"tone"`
}

// Solution describes how the billing team addresses a pain point.
type Solution struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Benefits    []string `yaml:"benefits"`
}

// ServiceOffering describes one billing service line.
type ServiceOffering struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

// BenefitMetric is one headline statistic in the benefits panel.
type BenefitMetric struct {
	Metric string   `yaml:"metric"`
	Label  string   `yaml:"label"`
	Icon   icons.ID `yaml:"icon"`
}

// RelatedLink points to another page on the site.
type RelatedLink struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Icon        icons.ID `yaml:"icon,omitempty"`
}

// Testimonial is a client quote shown on a specialty page.
type Testimonial struct {
	Quote    string `yaml:"quote"`
	Author   string `yaml:"author"`
	Role     string `yaml:"role"`
	Practice string `yaml:"practice"`
}

// Link is a labeled in-site or outbound target.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Hero is the banner at the top of a specialty page.
type Hero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Title        string `yaml:"title"`
	Highlight    string `yaml:"highlight"`
	Subtitle     string `yaml:"subtitle"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
}

// CallToAction is the closing banner of a specialty page.
type CallToAction struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// SEO carries per-page search metadata.
type SEO struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Keywords      []string `yaml:"keywords"`
	CanonicalPath string   `yaml:"canonical_path"`
}

// Specialty is the complete content for one landing page.
type Specialty struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	// Summary is the short blurb used on index cards.
	Summary string   `yaml:"summary"`
	Icon    icons.ID `yaml:"icon"`
	// MedicalSpecialty is a schema.org MedicalSpecialty term, empty when none applies.
	MedicalSpecialty string            `yaml:"medical_specialty"`
	Hero             Hero              `yaml:"hero"`
	PainPoints       []PainPoint       `yaml:"pain_points"`
	Solutions        []Solution        `yaml:"solutions"`
	Services         []ServiceOffering `yaml:"services"`
	Benefits         []BenefitMetric   `yaml:"benefits"`
	Testimonial      Testimonial       `yaml:"testimonial"`
	CTA              CallToAction      `yaml:"cta"`
	SEO              SEO               `yaml:"seo"`
}

func (s Specialty) clone() Specialty {
	out := s
	out.PainPoints = append([]PainPoint(nil), s.PainPoints...)
	out.Solutions = make([]Solution, len(s.Solutions))
	for i, solution := range s.Solutions {
		solution.Benefits = append([]string(nil), solution.Benefits...)
		out.Solutions[i] = solution
	}
	out.Services = make([]ServiceOffering, len(s.Services))
	for i, service := range s.Services {
		service.Features = append([]string(nil), service.Features...)
		out.Services[i] = service
	}
	out.Benefits = append([]BenefitMetric(nil), s.Benefits...)
	out.SEO.Keywords = append([]string(nil), s.SEO.Keywords...)
	return out
}
