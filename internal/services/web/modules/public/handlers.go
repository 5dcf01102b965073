package public

import (
	"net/http"

	webi18n "github.com/claimwise/site/internal/services/web/i18n"
	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/platform/httpx"
	"github.com/claimwise/site/internal/services/web/platform/pagerender"
	"github.com/claimwise/site/internal/services/web/platform/weberror"
	"github.com/claimwise/site/internal/services/web/seo"
	"github.com/claimwise/site/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Loc:   loc,
		Lang:  lang,
		Title: templates.T(loc, "web.home.title"),
		Body: templates.Home(templates.SpecialtyListView{
			Loc:         loc,
			Specialties: h.deps.ContentCatalog().Specialties(),
		}),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h handlers) handleRobots(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, seo.Robots(h.deps.PublicBaseURL))
}

func (h handlers) handleSitemap(w http.ResponseWriter, r *http.Request) {
	body, err := seo.Sitemap(h.deps.PublicBaseURL, seo.Entries(h.deps.ContentCatalog()))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
