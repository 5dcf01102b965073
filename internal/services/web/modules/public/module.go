// Package public serves the home page, crawler documents and the health check.
package public

import (
	"net/http"

	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/routepath"
)

// Module provides the site root routes.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string {
	return "public"
}

// Mount wires the root route subtree.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
