package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	webstorage "github.com/claimwise/site/internal/services/web/storage"
	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.db")
	openStore(t, path)

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	if err := sqlDB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = 'inquiries'").Scan(&name); err != nil {
		t.Fatalf("expected inquiries table: %v", err)
	}
}

func TestReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.db")
	first, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	openStore(t, path)
}

func TestInquiryRoundTrip(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "web.db"))
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	want := webstorage.Inquiry{
		ID:           "inq-1",
		Name:         "Dana Whitfield",
		Email:        "dana@example.com",
		Phone:        "555-0100",
		Practice:     "Coastal Home Medical Supply",
		SpecialtyKey: "durable-medical-equipment",
		Message:      "We have rental denials.",
		ClientIP:     "192.0.2.1",
		CreatedAt:    createdAt,
	}
	if err := store.CreateInquiry(ctx, want); err != nil {
		t.Fatalf("create inquiry: %v", err)
	}

	got, err := store.GetInquiry(ctx, "inq-1")
	if err != nil {
		t.Fatalf("get inquiry: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inquiry mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateInquiryRejectsDuplicateID(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "web.db"))
	ctx := context.Background()

	inquiry := webstorage.Inquiry{ID: "inq-1", Name: "A", Email: "a@example.com", Message: "hi"}
	if err := store.CreateInquiry(ctx, inquiry); err != nil {
		t.Fatalf("create inquiry: %v", err)
	}
	if err := store.CreateInquiry(ctx, inquiry); err == nil {
		t.Fatal("expected duplicate id to fail")
	}
}

func TestCreateInquiryValidatesRequiredFields(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "web.db"))
	ctx := context.Background()

	if err := store.CreateInquiry(ctx, webstorage.Inquiry{Name: "A", Email: "a@example.com"}); err == nil {
		t.Fatal("expected missing id to fail")
	}
	if err := store.CreateInquiry(ctx, webstorage.Inquiry{ID: "x", Email: "a@example.com"}); err == nil {
		t.Fatal("expected missing name to fail")
	}
}

func TestGetInquiryNotFound(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "web.db"))

	_, err := store.GetInquiry(context.Background(), "missing")
	if !errors.Is(err, webstorage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListInquiriesNewestFirst(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "web.db"))
	ctx := context.Background()

	base := time.Date(2026, 3, 4, 5, 0, 0, 0, time.UTC)
	for i, id := range []string{"inq-old", "inq-mid", "inq-new"} {
		err := store.CreateInquiry(ctx, webstorage.Inquiry{
			ID:        id,
			Name:      "Client",
			Email:     "client@example.com",
			Message:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got, err := store.ListInquiries(ctx, 2)
	if err != nil {
		t.Fatalf("list inquiries: %v", err)
	}
	ids := make([]string, 0, len(got))
	for _, inquiry := range got {
		ids = append(ids, inquiry.ID)
	}
	if diff := cmp.Diff([]string{"inq-new", "inq-mid"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestNilStoreReturnsErrors(t *testing.T) {
	var store *Store
	if err := store.CreateInquiry(context.Background(), webstorage.Inquiry{}); err == nil {
		t.Fatal("expected error from nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() on nil store = %v", err)
	}
}

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}
