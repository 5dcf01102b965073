package contact

import (
	"errors"
	"net/http"

	webi18n "github.com/claimwise/site/internal/services/web/i18n"
	module "github.com/claimwise/site/internal/services/web/module"
	apperrors "github.com/claimwise/site/internal/services/web/platform/errors"
	"github.com/claimwise/site/internal/services/web/platform/flash"
	"github.com/claimwise/site/internal/services/web/platform/httpx"
	"github.com/claimwise/site/internal/services/web/platform/pagerender"
	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
	"github.com/claimwise/site/internal/services/web/platform/weberror"
	"github.com/claimwise/site/internal/services/web/routepath"
	"github.com/claimwise/site/internal/services/web/templates"
	"github.com/gorilla/csrf"
)

type handlers struct {
	deps    module.Dependencies
	service service
}

func newHandlers(deps module.Dependencies, svc service) handlers {
	return handlers{deps: deps, service: svc}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	form := templates.ContactForm{
		Specialty: h.service.knownSpecialty(r.URL.Query().Get(routepath.ContactSpecialty)),
	}
	h.renderForm(w, r, http.StatusOK, form, nil)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.service.available() {
		h.renderForm(w, r, http.StatusServiceUnavailable, formFromRequest(r), nil)
		return
	}
	if !h.deps.ContactLimiter.AllowRequest(w, r) {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindRateLimited, "errors.rate_limited", "contact rate limit exceeded"), h.deps)
		return
	}

	form := normalizeForm(formFromRequest(r))
	if errs := h.service.validate(form); len(errs) > 0 {
		h.renderForm(w, r, http.StatusBadRequest, form, errs)
		return
	}

	inquiry, err := h.service.submit(httpx.RequestContext(r), form, requestmeta.ClientIP(r))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	h.deps.Log().Printf("contact inquiry stored: id=%s specialty=%q", inquiry.ID, inquiry.SpecialtyKey)
	h.deps.Flash.Write(w, r, flash.Success("contact.notice.sent"))
	httpx.SeeOther(w, r, routepath.Contact)
}

func (h handlers) handleForbidden(w http.ResponseWriter, r *http.Request) {
	h.deps.Log().Printf("contact csrf rejected: path=%s reason=%v", r.URL.Path, csrf.FailureReason(r))
	weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindForbidden, "errors.forbidden", "csrf validation failed"), h.deps)
}

func (h handlers) handleUnreadableForm(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.deps.Log().Printf("contact body rejected: limit=%d", tooLarge.Limit)
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindTooLarge, "errors.too_large", "contact body too large"), h.deps)
		return
	}
	weberror.WriteModuleError(w, r, &apperrors.Error{Kind: apperrors.KindInvalidInput, Key: "errors.bad_request", Message: "parse contact form", Err: err}, h.deps)
}

func (h handlers) renderForm(w http.ResponseWriter, r *http.Request, status int, form templates.ContactForm, errs fieldErrors) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	view := templates.ContactView{
		Loc:           loc,
		Specialties:   h.service.catalog.Specialties(),
		Form:          form,
		CSRFFieldName: CSRFFieldName,
		CSRFToken:     csrf.Token(r),
		Unavailable:   !h.service.available(),
	}
	if len(errs) > 0 {
		view.Errors = make(map[string]string, len(errs))
		for field, key := range errs {
			view.Errors[field] = templates.T(loc, key)
		}
	}
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Loc:           loc,
		Lang:          lang,
		Title:         templates.T(loc, "contact.title"),
		CanonicalPath: routepath.Contact,
		StatusCode:    status,
		Body:          templates.ContactPage(view),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func formFromRequest(r *http.Request) templates.ContactForm {
	return templates.ContactForm{
		Name:      r.PostFormValue(templates.FieldName),
		Email:     r.PostFormValue(templates.FieldEmail),
		Phone:     r.PostFormValue(templates.FieldPhone),
		Practice:  r.PostFormValue(templates.FieldPractice),
		Specialty: r.PostFormValue(templates.FieldSpecialty),
		Message:   r.PostFormValue(templates.FieldMessage),
	}
}
