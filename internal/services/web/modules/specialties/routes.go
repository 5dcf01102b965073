package specialties

import (
	"net/http"

	"github.com/claimwise/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SpecialtiesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SpecialtyPattern, h.handleSpecialty)
	mux.HandleFunc(http.MethodGet+" "+routepath.SpecialtiesPrefix+"{rest...}", h.handleNotFound)
}
