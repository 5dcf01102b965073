// Package contact serves the inquiry form and stores submissions.
package contact

import (
	"errors"
	"net/http"
	"strings"

	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
	"github.com/claimwise/site/internal/services/web/routepath"
	"github.com/gorilla/csrf"
)

const (
	// CSRFFieldName is the hidden form field carrying the CSRF token.
	CSRFFieldName = "csrf_token"
	// CSRFCookieName stores the CSRF secret.
	CSRFCookieName = "claimwise_csrf"
	csrfKeyLength  = 32
	// maxFormBytes bounds a submission body; field limits are far smaller.
	maxFormBytes = 64 << 10
)

// Module provides the contact route.
type Module struct{}

// New returns the contact module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string {
	return "contact"
}

// Mount wires GET and POST /contact behind CSRF protection.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if len(deps.CSRFKey) != csrfKeyLength {
		return module.Mount{}, errors.New("csrf key must be 32 bytes")
	}
	h := newHandlers(deps, newService(deps))
	mux := http.NewServeMux()
	registerRoutes(mux, h)

	protect := csrf.Protect(deps.CSRFKey,
		csrf.FieldName(CSRFFieldName),
		csrf.CookieName(CSRFCookieName),
		csrf.Path(routepath.Contact),
		csrf.Secure(strings.HasPrefix(strings.ToLower(deps.PublicBaseURL), "https://")),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(h.handleForbidden)),
	)
	return module.Mount{
		Prefix:  routepath.Contact,
		Handler: limitForm(h, markPlaintext(deps.SchemePolicy, protect(mux))),
	}, nil
}

// limitForm parses POST bodies under maxFormBytes before the CSRF layer
// reads its token field.
func limitForm(h handlers, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			h.handleUnreadableForm(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// markPlaintext tells the CSRF layer when the request arrived over plain
// HTTP so it skips the TLS-only Referer check.
func markPlaintext(policy requestmeta.SchemePolicy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !policy.IsHTTPS(r) {
			r = csrf.PlaintextHTTPRequest(r)
		}
		next.ServeHTTP(w, r)
	})
}
