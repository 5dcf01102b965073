// Package web parses web service flags and launches the site.
package web

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	entrypoint "github.com/claimwise/site/internal/platform/cmd"
	"github.com/claimwise/site/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"CLAIMWISE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	PublicBaseURL string `env:"CLAIMWISE_WEB_PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	// DBPath is the inquiry database; "none" or an empty flag disables storage.
	DBPath string `env:"CLAIMWISE_WEB_DB_PATH" envDefault:"data/web.db"`
	// CSRFKey is 32 raw bytes or 64 hex characters; empty generates one per process.
	CSRFKey        string  `env:"CLAIMWISE_WEB_CSRF_KEY"`
	TrustForwarded bool    `env:"CLAIMWISE_WEB_TRUST_FORWARDED" envDefault:"false"`
	ContactRate    float64 `env:"CLAIMWISE_WEB_CONTACT_RATE" envDefault:"5"`
	ContactBurst   int     `env:"CLAIMWISE_WEB_CONTACT_BURST" envDefault:"3"`

	// One-shot operator tasks; flags only.
	IconsMarkdown bool   `env:"-"`
	ListInquiries int    `env:"-"`
	ShowInquiry   string `env:"-"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.PublicBaseURL, "public-base-url", cfg.PublicBaseURL, "Public origin used for canonical links and the sitemap")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for contact inquiries (empty disables storage)")
	fs.BoolVar(&cfg.TrustForwarded, "trust-forwarded", cfg.TrustForwarded, "Honor X-Forwarded-* headers from a fronting proxy")
	fs.Float64Var(&cfg.ContactRate, "contact-rate", cfg.ContactRate, "Contact submissions allowed per client per minute (0 uses the default, negative disables limiting)")
	fs.IntVar(&cfg.ContactBurst, "contact-burst", cfg.ContactBurst, "Contact submission burst per client")
	fs.BoolVar(&cfg.IconsMarkdown, "icons-markdown", false, "Print the icon catalog as markdown and exit")
	fs.IntVar(&cfg.ListInquiries, "list-inquiries", 0, "Print the newest N stored inquiries and exit")
	fs.StringVar(&cfg.ShowInquiry, "show-inquiry", "", "Print one stored inquiry by id and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server, or runs the requested one-shot task.
func Run(ctx context.Context, cfg Config) error {
	if handled, err := runTask(ctx, cfg, os.Stdout); handled {
		return err
	}
	csrfKey, err := decodeCSRFKey(cfg.CSRFKey)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:             cfg.HTTPAddr,
			PublicBaseURL:        cfg.PublicBaseURL,
			DBPath:               storagePath(cfg.DBPath),
			CSRFKey:              csrfKey,
			TrustForwarded:       cfg.TrustForwarded,
			ContactRatePerMinute: cfg.ContactRate,
			ContactBurst:         cfg.ContactBurst,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func storagePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "none") {
		return ""
	}
	return raw
}

func decodeCSRFKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	switch len(raw) {
	case 0:
		return nil, nil
	case 32:
		return []byte(raw), nil
	case 64:
		key, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("decode csrf key: %w", err)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("csrf key must be 32 bytes or 64 hex characters, got %d characters", len(raw))
	}
}
