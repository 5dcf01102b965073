package contact

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/claimwise/site/internal/platform/id"
	"github.com/claimwise/site/internal/services/web/content"
	module "github.com/claimwise/site/internal/services/web/module"
	apperrors "github.com/claimwise/site/internal/services/web/platform/errors"
	webstorage "github.com/claimwise/site/internal/services/web/storage"
	"github.com/claimwise/site/internal/services/web/templates"
)

const (
	maxNameLength     = 120
	maxEmailLength    = 254
	maxPhoneLength    = 40
	maxPracticeLength = 160
	maxMessageLength  = 4000
)

// fieldErrors maps form field names to localization keys.
type fieldErrors map[string]string

type service struct {
	store   webstorage.InquiryStore
	catalog *content.Catalog
	now     func() time.Time
	newID   func() (string, error)
}

func newService(deps module.Dependencies) service {
	return service{
		store:   deps.Inquiries,
		catalog: deps.ContentCatalog(),
		now:     deps.Clock(),
		newID:   id.NewID,
	}
}

func (s service) available() bool {
	return s.store != nil
}

// knownSpecialty returns key when it names a catalog specialty.
func (s service) knownSpecialty(key string) string {
	key = strings.TrimSpace(key)
	if _, ok := s.catalog.Specialty(key); ok {
		return key
	}
	return ""
}

func normalizeForm(form templates.ContactForm) templates.ContactForm {
	return templates.ContactForm{
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		Practice:  strings.TrimSpace(form.Practice),
		Specialty: strings.TrimSpace(form.Specialty),
		Message:   strings.TrimSpace(form.Message),
	}
}

func (s service) validate(form templates.ContactForm) fieldErrors {
	errs := fieldErrors{}
	switch {
	case form.Name == "":
		errs[templates.FieldName] = "contact.error.name_required"
	case tooLong(form.Name, maxNameLength):
		errs[templates.FieldName] = "contact.error.field_too_long"
	}
	switch {
	case tooLong(form.Email, maxEmailLength):
		errs[templates.FieldEmail] = "contact.error.field_too_long"
	case !validEmail(form.Email):
		errs[templates.FieldEmail] = "contact.error.email_invalid"
	}
	if tooLong(form.Phone, maxPhoneLength) {
		errs[templates.FieldPhone] = "contact.error.field_too_long"
	}
	if tooLong(form.Practice, maxPracticeLength) {
		errs[templates.FieldPractice] = "contact.error.field_too_long"
	}
	if form.Specialty != "" && s.knownSpecialty(form.Specialty) == "" {
		errs[templates.FieldSpecialty] = "contact.error.specialty_unknown"
	}
	switch {
	case form.Message == "":
		errs[templates.FieldMessage] = "contact.error.message_required"
	case tooLong(form.Message, maxMessageLength):
		errs[templates.FieldMessage] = "contact.error.field_too_long"
	}
	return errs
}

func tooLong(value string, limit int) bool {
	return utf8.RuneCountInString(value) > limit
}

// validEmail accepts a bare address; display-name forms are rejected.
func validEmail(value string) bool {
	if value == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	return at > 0 && strings.Contains(value[at+1:], ".")
}

// submit persists a validated form.
func (s service) submit(ctx context.Context, form templates.ContactForm, clientIP string) (webstorage.Inquiry, error) {
	if !s.available() {
		return webstorage.Inquiry{}, apperrors.EK(apperrors.KindUnavailable, "contact.unavailable", "inquiry storage is not configured")
	}
	inquiryID, err := s.newID()
	if err != nil {
		return webstorage.Inquiry{}, apperrors.Wrap(apperrors.KindUnknown, "generate inquiry id", err)
	}
	inquiry := webstorage.Inquiry{
		ID:           inquiryID,
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Practice:     form.Practice,
		SpecialtyKey: form.Specialty,
		Message:      form.Message,
		ClientIP:     clientIP,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateInquiry(ctx, inquiry); err != nil {
		return webstorage.Inquiry{}, apperrors.Wrap(apperrors.KindUnknown, "store inquiry", err)
	}
	return inquiry, nil
}
