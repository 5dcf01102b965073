// Package web hosts the public marketing site.
package web

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/claimwise/site/internal/platform/timeouts"
	webapp "github.com/claimwise/site/internal/services/web/app"
	"github.com/claimwise/site/internal/services/web/content"
	module "github.com/claimwise/site/internal/services/web/module"
	"github.com/claimwise/site/internal/services/web/modules"
	"github.com/claimwise/site/internal/services/web/platform/flash"
	"github.com/claimwise/site/internal/services/web/platform/httpx"
	"github.com/claimwise/site/internal/services/web/platform/observability"
	"github.com/claimwise/site/internal/services/web/platform/ratelimit"
	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
	"github.com/claimwise/site/internal/services/web/routepath"
	webstatic "github.com/claimwise/site/internal/services/web/static"
	webstorage "github.com/claimwise/site/internal/services/web/storage"
	"github.com/claimwise/site/internal/services/web/storage/sqlite"
)

const (
	csrfKeyLength       = 32
	staticCacheControl  = "public, max-age=3600"
	defaultContactRate  = 5
	defaultContactBurst = 3
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr      string
	PublicBaseURL string
	// DBPath is the SQLite file for contact inquiries; empty disables storage.
	DBPath string
	// CSRFKey must be 32 bytes; a random key is generated when empty.
	CSRFKey []byte
	// TrustForwarded honors X-Forwarded-* headers from a fronting proxy.
	TrustForwarded bool
	// ContactRatePerMinute and ContactBurst bound inquiry submissions per client.
	ContactRatePerMinute float64
	ContactBurst         int
	Catalog              *content.Catalog
	// Inquiries overrides DBPath with an already-open store.
	Inquiries webstorage.InquiryStore
	Logger    *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
	logger     *log.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	baseURL, err := normalizeBaseURL(cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	csrfKey, err := resolveCSRFKey(cfg.CSRFKey)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = content.Default()
	}
	rate, burst := cfg.ContactRatePerMinute, cfg.ContactBurst
	if rate == 0 {
		rate = defaultContactRate
	}
	if burst == 0 {
		burst = defaultContactBurst
	}

	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwarded}
	deps := module.Dependencies{
		Catalog:        catalog,
		Inquiries:      cfg.Inquiries,
		PublicBaseURL:  baseURL,
		SchemePolicy:   policy,
		ContactLimiter: ratelimit.New(rate, burst),
		Flash:          flash.NewStore(csrfKey, policy),
		CSRFKey:        csrfKey,
		Logger:         logger,
	}
	h, err := webapp.BuildRootHandler(webapp.Config{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, staticHandler())
	rootMux.Handle(routepath.Root, h)

	var proxyHeaders httpx.Middleware
	if cfg.TrustForwarded {
		proxyHeaders = httpx.ProxyHeaders()
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		proxyHeaders,
		observability.Tracing(),
		observability.RequestLogger(logger),
		httpx.Compress(),
	), nil
}

func staticHandler() http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == routepath.StaticPrefix {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", staticCacheControl)
		files.ServeHTTP(w, r)
	})
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return "", errors.New("public base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse public base url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("public base url must be absolute http(s), got %q", raw)
	}
	return raw, nil
}

func resolveCSRFKey(key []byte) ([]byte, error) {
	if len(key) == 0 {
		generated := make([]byte, csrfKeyLength)
		if _, err := rand.Read(generated); err != nil {
			return nil, fmt.Errorf("generate csrf key: %w", err)
		}
		return generated, nil
	}
	if len(key) != csrfKeyLength {
		return nil, fmt.Errorf("csrf key must be %d bytes, got %d", csrfKeyLength, len(key))
	}
	return key, nil
}

// NewServer validates config, opens storage and constructs a web server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	logger := cfg.Logger

	var store *sqlite.Store
	if cfg.Inquiries == nil {
		if dbPath := strings.TrimSpace(cfg.DBPath); dbPath != "" {
			if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
			opened, err := sqlite.Open(ctx, dbPath)
			if err != nil {
				return nil, fmt.Errorf("open inquiry storage: %w", err)
			}
			store = opened
			cfg.Inquiries = store
		} else {
			logger.Printf("inquiry storage disabled: contact submissions will return 503")
		}
	}

	handler, err := NewHandler(cfg)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		store:    store,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ReadTimeout:       timeouts.Read,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.loggerOrDefault().Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.loggerOrDefault().Printf("close inquiry storage: %v", err)
		}
	}
}

func (s *Server) loggerOrDefault() *log.Logger {
	if s.logger == nil {
		return log.Default()
	}
	return s.logger
}
