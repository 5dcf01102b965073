package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/claimwise/site/internal/platform/icons"
	webstorage "github.com/claimwise/site/internal/services/web/storage"
	"github.com/claimwise/site/internal/services/web/storage/sqlite"
)

// runTask handles the one-shot operator flags. It reports false when no
// task was requested and the server should start.
func runTask(ctx context.Context, cfg Config, out io.Writer) (bool, error) {
	switch {
	case cfg.IconsMarkdown:
		_, err := io.WriteString(out, icons.CatalogMarkdown())
		return true, err
	case strings.TrimSpace(cfg.ShowInquiry) != "" || cfg.ListInquiries > 0:
		store, err := openExistingStore(ctx, storagePath(cfg.DBPath))
		if err != nil {
			return true, err
		}
		defer store.Close()
		if id := strings.TrimSpace(cfg.ShowInquiry); id != "" {
			return true, showInquiry(ctx, store, id, out)
		}
		return true, listInquiries(ctx, store, cfg.ListInquiries, out)
	}
	return false, nil
}

// openExistingStore refuses to create a fresh database for a read-only report.
func openExistingStore(ctx context.Context, path string) (*sqlite.Store, error) {
	if path == "" {
		return nil, errors.New("inquiry reports require -db-path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("inquiry database: %w", err)
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open inquiry storage: %w", err)
	}
	return store, nil
}

func listInquiries(ctx context.Context, reader webstorage.InquiryReader, limit int, out io.Writer) error {
	inquiries, err := reader.ListInquiries(ctx, limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECEIVED\tSPECIALTY\tNAME\tEMAIL")
	for _, inquiry := range inquiries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			inquiry.ID,
			inquiry.CreatedAt.UTC().Format(time.RFC3339),
			valueOrDash(inquiry.SpecialtyKey),
			inquiry.Name,
			inquiry.Email,
		)
	}
	return tw.Flush()
}

func showInquiry(ctx context.Context, reader webstorage.InquiryReader, id string, out io.Writer) error {
	inquiry, err := reader.GetInquiry(ctx, id)
	if errors.Is(err, webstorage.ErrNotFound) {
		return fmt.Errorf("inquiry %q not found", id)
	}
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fields := [][2]string{
		{"id", inquiry.ID},
		{"received", inquiry.CreatedAt.UTC().Format(time.RFC3339)},
		{"name", inquiry.Name},
		{"email", inquiry.Email},
		{"phone", valueOrDash(inquiry.Phone)},
		{"practice", valueOrDash(inquiry.Practice)},
		{"specialty", valueOrDash(inquiry.SpecialtyKey)},
		{"client ip", valueOrDash(inquiry.ClientIP)},
	}
	for _, field := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", field[0], field[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%s\n", inquiry.Message)
	return err
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
