package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/claimwise/site/internal/platform/icons"
	"github.com/claimwise/site/internal/services/web/routepath"
)

func specialtyPath(key string) string {
	return routepath.Specialty(key)
}

func validateSpecialty(s Specialty) error {
	if strings.TrimSpace(s.Key) == "" {
		return errors.New("specialty key is required")
	}
	if s.Key != strings.ToLower(strings.TrimSpace(s.Key)) || strings.ContainsAny(s.Key, " /?#") {
		return fmt.Errorf("specialty key %q must be a lowercase path segment", s.Key)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("specialty %q: name is required", s.Key)
	}
	if strings.TrimSpace(s.Hero.Title) == "" {
		return fmt.Errorf("specialty %q: hero title is required", s.Key)
	}
	if strings.TrimSpace(s.SEO.Title) == "" || strings.TrimSpace(s.SEO.Description) == "" {
		return fmt.Errorf("specialty %q: seo title and description are required", s.Key)
	}
	if err := checkIcon(s.Icon, true); err != nil {
		return fmt.Errorf("specialty %q: %w", s.Key, err)
	}
	for i, point := range s.PainPoints {
		if strings.TrimSpace(point.Title) == "" {
			return fmt.Errorf("specialty %q: pain point %d: title is required", s.Key, i)
		}
		if err := checkIcon(point.Icon, false); err != nil {
			return fmt.Errorf("specialty %q: pain point %q: %w", s.Key, point.Title, err)
		}
		if point.Tone != "" && !point.Tone.known() {
			return fmt.Errorf("specialty %q: pain point %q: unknown tone %q", s.Key, point.Title, point.Tone)
		}
	}
	for i, solution := range s.Solutions {
		if strings.TrimSpace(solution.Title) == "" {
			return fmt.Errorf("specialty %q: solution %d: title is required", s.Key, i)
		}
	}
	for i, service := range s.Services {
		if strings.TrimSpace(service.Title) == "" {
			return fmt.Errorf("specialty %q: service %d: title is required", s.Key, i)
		}
	}
	for i, benefit := range s.Benefits {
		if strings.TrimSpace(benefit.Metric) == "" || strings.TrimSpace(benefit.Label) == "" {
			return fmt.Errorf("specialty %q: benefit %d: metric and label are required", s.Key, i)
		}
		if err := checkIcon(benefit.Icon, false); err != nil {
			return fmt.Errorf("specialty %q: benefit %q: %w", s.Key, benefit.Label, err)
		}
	}
	for _, cta := range []Link{s.Hero.PrimaryCTA, s.Hero.SecondaryCTA} {
		if cta.URL != "" && !isSiteOrDialURL(cta.URL) {
			return fmt.Errorf("specialty %q: hero link %q must be site-relative or tel:", s.Key, cta.URL)
		}
	}
	return nil
}

func (c *Catalog) validateLinks(owner string, links []RelatedLink) error {
	for i, link := range links {
		if strings.TrimSpace(link.Title) == "" {
			return fmt.Errorf("%s: link %d: title is required", owner, i)
		}
		if !strings.HasPrefix(link.URL, "/") || strings.HasPrefix(link.URL, "//") {
			return fmt.Errorf("%s: link %q: url %q must be site-relative", owner, link.Title, link.URL)
		}
		if key, ok := strings.CutPrefix(link.URL, routepath.SpecialtiesPrefix); ok && key != "" {
			if _, known := c.specialties[key]; !known {
				return fmt.Errorf("%s: link %q: unknown specialty %q", owner, link.Title, key)
			}
		}
		if err := checkIcon(link.Icon, false); err != nil {
			return fmt.Errorf("%s: link %q: %w", owner, link.Title, err)
		}
	}
	return nil
}

func checkIcon(id icons.ID, required bool) error {
	if id == "" {
		if required {
			return errors.New("icon is required")
		}
		return nil
	}
	if !icons.Known(id) {
		return fmt.Errorf("unknown icon %q", id)
	}
	return nil
}

func isSiteOrDialURL(raw string) bool {
	return (strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//")) || strings.HasPrefix(raw, "tel:")
}
