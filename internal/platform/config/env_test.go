package config

import (
	"strings"
	"testing"
)

type siteSettings struct {
	Addr  string  `env:"CLAIMWISE_TEST_ADDR" envDefault:"localhost:8080"`
	Rate  float64 `env:"CLAIMWISE_TEST_RATE" envDefault:"5"`
	Debug bool    `env:"CLAIMWISE_TEST_DEBUG"`
}

func TestLoadFromUsesDefaults(t *testing.T) {
	var cfg siteSettings
	if err := LoadFrom(&cfg, map[string]string{}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "localhost:8080" || cfg.Rate != 5 || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	var cfg siteSettings
	err := LoadFrom(&cfg, map[string]string{
		"CLAIMWISE_TEST_ADDR":  ":9000",
		"CLAIMWISE_TEST_RATE":  "0.5",
		"CLAIMWISE_TEST_DEBUG": "true",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.Rate != 0.5 || !cfg.Debug {
		t.Fatalf("unexpected values: %+v", cfg)
	}
}

func TestLoadFromEmptyValueKeepsDefault(t *testing.T) {
	var cfg siteSettings
	if err := LoadFrom(&cfg, map[string]string{"CLAIMWISE_TEST_ADDR": ""}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "localhost:8080" {
		t.Fatalf("addr = %q, want default", cfg.Addr)
	}
}

func TestLoadReadsProcessEnvironment(t *testing.T) {
	t.Setenv("CLAIMWISE_TEST_ADDR", "env:7000")

	var cfg siteSettings
	if err := Load(&cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "env:7000" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
}

func TestLoadFromWrapsDecodeErrors(t *testing.T) {
	var cfg siteSettings
	err := LoadFrom(&cfg, map[string]string{"CLAIMWISE_TEST_RATE": "fast"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "load config:") {
		t.Fatalf("error = %v", err)
	}
}
