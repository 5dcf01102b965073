package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/claimwise/site/internal/platform/branding"
	"github.com/claimwise/site/internal/services/web/content"
)

// SEOProps carries the metadata rendered in the document head.
type SEOProps struct {
	Title        string
	Description  string
	Keywords     []string
	CanonicalURL string
	// Locale is a BCP 47 tag such as en-US.
	Locale string
	// Type is the Open Graph object type; defaults to website.
	Type string
}

// ComposePageTitle appends the brand name unless the title already carries it.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, "| "+branding.AppName) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+branding.AppName); ok {
		title = strings.TrimSpace(base)
	}
	return title + " | " + branding.AppName
}

func openGraphType(value string) string {
	if value == "" {
		return "website"
	}
	return value
}

// openGraphLocale converts a BCP 47 tag to the underscore form Open Graph
// expects.
func openGraphLocale(tag string) string {
	return strings.ReplaceAll(tag, "-", "_")
}

func joinKeywords(keywords []string) string {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			cleaned = append(cleaned, keyword)
		}
	}
	return strings.Join(cleaned, ", ")
}

// SchemaProps describes the service advertised by a specialty page.
type SchemaProps struct {
	Name             string
	Description      string
	URL              string
	SiteURL          string
	MedicalSpecialty string
	Services         []content.ServiceOffering
}

type schemaService struct {
	Context      string              `json:"@context"`
	Type         string              `json:"@type"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	URL          string              `json:"url,omitempty"`
	ServiceType  string              `json:"serviceType"`
	Provider     schemaProvider      `json:"provider"`
	AreaServed   schemaPlace         `json:"areaServed"`
	OfferCatalog *schemaOfferCatalog `json:"hasOfferCatalog,omitempty"`
}

type schemaProvider struct {
	Type             string `json:"@type"`
	Name             string `json:"name"`
	URL              string `json:"url,omitempty"`
	Telephone        string `json:"telephone"`
	Email            string `json:"email"`
	MedicalSpecialty string `json:"medicalSpecialty,omitempty"`
}

type schemaPlace struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type schemaOfferCatalog struct {
	Type  string        `json:"@type"`
	Name  string        `json:"name"`
	Items []schemaOffer `json:"itemListElement"`
}

type schemaOffer struct {
	Type        string            `json:"@type"`
	ItemOffered schemaOfferedItem `json:"itemOffered"`
}

type schemaOfferedItem struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BuildSchema returns the JSON-LD document for a specialty service.
func BuildSchema(props SchemaProps) any {
	doc := schemaService{
		Context:     "https://schema.org",
		Type:        "Service",
		Name:        props.Name,
		Description: props.Description,
		URL:         props.URL,
		ServiceType: "Medical billing",
		Provider: schemaProvider{
			Type:             "MedicalBusiness",
			Name:             branding.AppName,
			URL:              props.SiteURL,
			Telephone:        strings.TrimPrefix(branding.PhoneURI, "tel:"),
			Email:            branding.Email,
			MedicalSpecialty: props.MedicalSpecialty,
		},
		AreaServed: schemaPlace{Type: "Country", Name: branding.AreaServed},
	}
	if len(props.Services) > 0 {
		catalog := &schemaOfferCatalog{Type: "OfferCatalog", Name: props.Name, Items: make([]schemaOffer, 0, len(props.Services))}
		for _, service := range props.Services {
			catalog.Items = append(catalog.Items, schemaOffer{
				Type: "Offer",
				ItemOffered: schemaOfferedItem{
					Type:        "Service",
					Name:        service.Title,
					Description: service.Description,
				},
			})
		}
		doc.OfferCatalog = catalog
	}
	return doc
}

// SpecialtySchema renders the JSON-LD script for a specialty service.
func SpecialtySchema(props SchemaProps) templ.Component {
	if strings.TrimSpace(props.Name) == "" {
		return templ.NopComponent
	}
	return templ.JSONScript("specialty-schema", BuildSchema(props)).WithType("application/ld+json")
}
