// Package cmd holds the startup sequence shared by service commands:
// env defaults, then flags, then a run loop wrapped in tracing.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/claimwise/site/internal/platform/config"
	"github.com/claimwise/site/internal/platform/otel"
	"github.com/claimwise/site/internal/platform/timeouts"
)

// ServiceWeb names the marketing site in logs and traces.
const ServiceWeb = "web"

// ParseConfig loads env defaults into cfg before flags are registered.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.Load(cfg)
}

// ParseArgs parses command-line flags over the env defaults.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs tracing for service, calls run, and flushes
// pending spans once run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tracing, err := otel.LoadConfig()
	if err != nil {
		return fmt.Errorf("%s telemetry config: %w", service, err)
	}
	shutdown, err := otel.Setup(ctx, service, tracing)
	if err != nil {
		return fmt.Errorf("%s telemetry: %w", service, err)
	}
	if tracing.Active() {
		log.Printf("%s tracing enabled endpoint=%s ratio=%g", service, tracing.Endpoint, tracing.SampleRatio)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryFlush)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
