package web

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.PublicBaseURL != "http://localhost:8080" {
		t.Fatalf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
	if cfg.DBPath != "data/web.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ContactRate != 5 || cfg.ContactBurst != 3 {
		t.Fatalf("contact limits = %v/%d", cfg.ContactRate, cfg.ContactBurst)
	}
	if cfg.TrustForwarded {
		t.Fatal("TrustForwarded = true, want false")
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("CLAIMWISE_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("CLAIMWISE_WEB_PUBLIC_BASE_URL", "https://claimwisebilling.com")
	t.Setenv("CLAIMWISE_WEB_DB_PATH", "none")
	t.Setenv("CLAIMWISE_WEB_TRUST_FORWARDED", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" || cfg.PublicBaseURL != "https://claimwisebilling.com" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !cfg.TrustForwarded {
		t.Fatal("TrustForwarded = false, want true")
	}
	if got := storagePath(cfg.DBPath); got != "" {
		t.Fatalf("storagePath(%q) = %q, want empty", cfg.DBPath, got)
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CLAIMWISE_WEB_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9001", "-db-path", "", "-contact-rate", "0"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9001" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9001")
	}
	if cfg.DBPath != "" {
		t.Fatalf("DBPath = %q, want empty", cfg.DBPath)
	}
	if cfg.ContactRate != 0 {
		t.Fatalf("ContactRate = %v, want 0", cfg.ContactRate)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestDecodeCSRFKey(t *testing.T) {
	t.Parallel()

	if key, err := decodeCSRFKey(""); err != nil || key != nil {
		t.Fatalf("empty key = %v, %v", key, err)
	}
	raw := strings.Repeat("a", 32)
	if key, err := decodeCSRFKey(raw); err != nil || string(key) != raw {
		t.Fatalf("raw key = %q, %v", key, err)
	}
	if key, err := decodeCSRFKey(strings.Repeat("0f", 32)); err != nil || len(key) != 32 {
		t.Fatalf("hex key = %v, %v", key, err)
	}
	if _, err := decodeCSRFKey(strings.Repeat("zz", 32)); err == nil {
		t.Fatal("expected invalid hex error")
	}
	if _, err := decodeCSRFKey("short"); err == nil {
		t.Fatal("expected length error")
	}
}
