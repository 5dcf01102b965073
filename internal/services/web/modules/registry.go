package modules

import (
	"github.com/claimwise/site/internal/services/web/modules/contact"
	"github.com/claimwise/site/internal/services/web/modules/public"
	"github.com/claimwise/site/internal/services/web/modules/specialties"
)

// DefaultModules returns the modules served by the site.
func DefaultModules() []Module {
	return []Module{
		public.New(),
		specialties.New(),
		contact.New(),
	}
}
