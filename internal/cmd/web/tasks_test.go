package web

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	webstorage "github.com/claimwise/site/internal/services/web/storage"
	"github.com/claimwise/site/internal/services/web/storage/sqlite"
)

func seedInquiries(t *testing.T, path string, inquiries ...webstorage.Inquiry) {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	for _, inquiry := range inquiries {
		if err := store.CreateInquiry(ctx, inquiry); err != nil {
			t.Fatalf("create inquiry: %v", err)
		}
	}
}

func TestRunTaskSkipsWhenNoTaskRequested(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	handled, err := runTask(context.Background(), Config{DBPath: "data/web.db"}, &out)
	if handled || err != nil {
		t.Fatalf("runTask() = %v, %v; want false, nil", handled, err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunTaskPrintsIconCatalog(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	handled, err := runTask(context.Background(), Config{IconsMarkdown: true}, &out)
	if !handled || err != nil {
		t.Fatalf("runTask() = %v, %v", handled, err)
	}
	if !strings.HasPrefix(out.String(), "# Icon Catalog") || !strings.Contains(out.String(), "| claim-denied |") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunTaskListsAndShowsInquiries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "web.db")
	received := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	seedInquiries(t, path,
		webstorage.Inquiry{ID: "inq-old", Name: "Dana Whitfield", Email: "dana@example.com", Message: "Rental denials.", CreatedAt: received},
		webstorage.Inquiry{ID: "inq-new", Name: "Priya Raman", Email: "priya@example.org", SpecialtyKey: "gastroenterology", Message: "Denials doubled.", CreatedAt: received.Add(time.Hour)},
	)

	var out bytes.Buffer
	handled, err := runTask(context.Background(), Config{DBPath: path, ListInquiries: 1}, &out)
	if !handled || err != nil {
		t.Fatalf("list runTask() = %v, %v", handled, err)
	}
	if !strings.Contains(out.String(), "inq-new") || strings.Contains(out.String(), "inq-old") {
		t.Fatalf("list output = %q, want only the newest inquiry", out.String())
	}
	if !strings.Contains(out.String(), "2026-03-04T06:06:07Z") {
		t.Fatalf("list output = %q, want RFC3339 timestamp", out.String())
	}

	out.Reset()
	handled, err = runTask(context.Background(), Config{DBPath: path, ShowInquiry: " inq-old "}, &out)
	if !handled || err != nil {
		t.Fatalf("show runTask() = %v, %v", handled, err)
	}
	for _, want := range []string{"dana@example.com", "specialty:", "Rental denials."} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("show output = %q, missing %q", out.String(), want)
		}
	}

	_, err = runTask(context.Background(), Config{DBPath: path, ShowInquiry: "missing"}, &out)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("show missing err = %v", err)
	}
}

func TestRunTaskDoesNotCreateMissingDatabase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.db")
	handled, err := runTask(context.Background(), Config{DBPath: path, ListInquiries: 5}, &bytes.Buffer{})
	if !handled || err == nil {
		t.Fatalf("runTask() = %v, %v; want handled error", handled, err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("database was created: %v", statErr)
	}

	if _, err := runTask(context.Background(), Config{DBPath: "none", ListInquiries: 5}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error when storage is disabled")
	}
}

func TestParseConfigReadsTaskFlags(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-list-inquiries", "20", "-show-inquiry", "inq-1", "-icons-markdown"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.ListInquiries != 20 || cfg.ShowInquiry != "inq-1" || !cfg.IconsMarkdown {
		t.Fatalf("cfg = %+v", cfg)
	}
}
