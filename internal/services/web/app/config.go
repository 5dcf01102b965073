package app

import module "github.com/claimwise/site/internal/services/web/module"

// Config captures the composition inputs for the root handler.
type Config struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}
