// Package module defines the contracts shared by mountable web modules.
package module

import (
	"log"
	"net/http"
	"time"

	"github.com/claimwise/site/internal/services/web/content"
	"github.com/claimwise/site/internal/services/web/platform/flash"
	"github.com/claimwise/site/internal/services/web/platform/ratelimit"
	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
	"github.com/claimwise/site/internal/services/web/storage"
)

// Dependencies carries shared services available to every module.
type Dependencies struct {
	// Catalog is the specialty content; nil falls back to content.Default.
	Catalog *content.Catalog
	// Inquiries persists contact submissions; nil disables submissions.
	Inquiries storage.InquiryStore
	// PublicBaseURL is the absolute origin used for canonical links.
	PublicBaseURL  string
	SchemePolicy   requestmeta.SchemePolicy
	ContactLimiter *ratelimit.Limiter
	// Flash carries post-redirect notices; nil drops them.
	Flash *flash.Store
	// CSRFKey authenticates form tokens; it must be 32 bytes.
	CSRFKey []byte
	Logger  *log.Logger
	Now     func() time.Time
}

// ContentCatalog returns the configured catalog or the embedded default.
func (d Dependencies) ContentCatalog() *content.Catalog {
	if d.Catalog != nil {
		return d.Catalog
	}
	return content.Default()
}

// Clock returns the configured time source.
func (d Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Log returns the configured logger or the standard logger.
func (d Dependencies) Log() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}

// Mount describes where a module is attached and which handler serves it.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one mountable feature area.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
