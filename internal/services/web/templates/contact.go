package templates

import "github.com/claimwise/site/internal/services/web/content"

// Contact form field names.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPractice  = "practice"
	FieldSpecialty = "specialty"
	FieldMessage   = "message"
)

// ContactForm holds submitted or pre-filled form values.
type ContactForm struct {
	Name      string
	Email     string
	Phone     string
	Practice  string
	Specialty string
	Message   string
}

// ContactView carries the contact page state.
type ContactView struct {
	Loc         Localizer
	Specialties []content.Specialty
	Form        ContactForm
	// Errors maps field names to localized messages.
	Errors        map[string]string
	CSRFFieldName string
	CSRFToken     string
	Unavailable   bool
}

func fieldID(name string) string {
	return "contact-" + name
}

func fieldClass(view ContactView, name string) string {
	if _, ok := view.Errors[name]; ok {
		return "field field--invalid"
	}
	return "field"
}

func errorID(view ContactView, name string) string {
	if _, ok := view.Errors[name]; ok {
		return "contact-" + name + "-error"
	}
	return ""
}
