package specialties

import (
	"net/http"

	webi18n "github.com/claimwise/site/internal/services/web/i18n"
	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/platform/pagerender"
	"github.com/claimwise/site/internal/services/web/platform/weberror"
	"github.com/claimwise/site/internal/services/web/routepath"
	"github.com/claimwise/site/internal/services/web/seo"
	"github.com/claimwise/site/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Loc:           loc,
		Lang:          lang,
		Title:         templates.T(loc, "web.specialties.title"),
		CanonicalPath: routepath.SpecialtiesPrefix,
		Body: templates.SpecialtiesIndex(templates.SpecialtyListView{
			Loc:         loc,
			Specialties: h.deps.ContentCatalog().Specialties(),
		}),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h handlers) handleSpecialty(w http.ResponseWriter, r *http.Request) {
	catalog := h.deps.ContentCatalog()
	specialty, ok := catalog.Specialty(r.PathValue("key"))
	if !ok {
		h.handleNotFound(w, r)
		return
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Loc:           loc,
		Lang:          lang,
		Title:         specialty.SEO.Title,
		Description:   specialty.SEO.Description,
		Keywords:      specialty.SEO.Keywords,
		CanonicalPath: specialty.SEO.CanonicalPath,
		Head: templates.SpecialtySchema(templates.SchemaProps{
			Name:             specialty.Name,
			Description:      specialty.SEO.Description,
			URL:              seo.AbsoluteURL(h.deps.PublicBaseURL, specialty.SEO.CanonicalPath),
			SiteURL:          seo.AbsoluteURL(h.deps.PublicBaseURL, routepath.Root),
			MedicalSpecialty: specialty.MedicalSpecialty,
			Services:         specialty.Services,
		}),
		Body: templates.SpecialtyPage(templates.SpecialtyView{
			Loc:       loc,
			Specialty: specialty,
			Related:   catalog.RelatedLinks(specialty.Key),
		}),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
