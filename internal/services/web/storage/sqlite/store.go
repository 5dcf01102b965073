// Package sqlite provides the SQLite-backed inquiry store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/claimwise/site/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/claimwise/site/internal/services/web/storage"
	"github.com/claimwise/site/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const maxListLimit = 500

// Store provides SQLite-backed persistence for contact inquiries.
type Store struct {
	sqlDB *sql.DB
}

var (
	_ webstorage.InquiryStore  = (*Store)(nil)
	_ webstorage.InquiryReader = (*Store)(nil)
)

// Open opens and migrates an inquiry SQLite store.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateInquiry inserts a new inquiry.
func (s *Store) CreateInquiry(ctx context.Context, inquiry webstorage.Inquiry) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	inquiry.ID = strings.TrimSpace(inquiry.ID)
	if inquiry.ID == "" {
		return fmt.Errorf("inquiry id is required")
	}
	if strings.TrimSpace(inquiry.Name) == "" || strings.TrimSpace(inquiry.Email) == "" {
		return fmt.Errorf("inquiry name and email are required")
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO inquiries (
		    id, name, email, phone, practice, specialty_key, message, client_ip, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Practice,
		inquiry.SpecialtyKey,
		inquiry.Message,
		inquiry.ClientIP,
		timeToUnixMillis(inquiry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// GetInquiry loads one inquiry by id.
func (s *Store) GetInquiry(ctx context.Context, id string) (webstorage.Inquiry, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Inquiry{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.Inquiry{}, fmt.Errorf("inquiry id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, phone, practice, specialty_key, message, client_ip, created_at
		 FROM inquiries
		 WHERE id = ?`,
		id,
	)
	inquiry, err := scanInquiry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return webstorage.Inquiry{}, webstorage.ErrNotFound
	}
	if err != nil {
		return webstorage.Inquiry{}, fmt.Errorf("get inquiry: %w", err)
	}
	return inquiry, nil
}

// ListInquiries returns up to limit inquiries, newest first.
func (s *Store) ListInquiries(ctx context.Context, limit int) ([]webstorage.Inquiry, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, phone, practice, specialty_key, message, client_ip, created_at
		 FROM inquiries
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []webstorage.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		out = append(out, inquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inquiries: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row rowScanner) (webstorage.Inquiry, error) {
	var inquiry webstorage.Inquiry
	var createdAt int64
	if err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.Practice,
		&inquiry.SpecialtyKey,
		&inquiry.Message,
		&inquiry.ClientIP,
		&createdAt,
	); err != nil {
		return webstorage.Inquiry{}, err
	}
	inquiry.CreatedAt = unixMillisToTime(createdAt)
	return inquiry, nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
