// Package specialties serves the specialty index and landing pages.
package specialties

import (
	"net/http"

	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/routepath"
)

// Module provides specialty routes.
type Module struct{}

// New returns the specialties module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string {
	return "specialties"
}

// Mount wires specialty routes under /specialties/.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.SpecialtiesPrefix, Handler: mux}, nil
}
