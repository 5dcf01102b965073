// Package storage defines persistence contracts for contact inquiries.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Inquiry is one contact-form submission from a prospective client practice.
type Inquiry struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Practice     string
	SpecialtyKey string
	Message      string
	// ClientIP is the submitting address, kept for abuse review.
	ClientIP  string
	CreatedAt time.Time
}

// InquiryStore persists contact inquiries.
type InquiryStore interface {
	CreateInquiry(ctx context.Context, inquiry Inquiry) error
}

// InquiryReader loads stored inquiries for operator review.
type InquiryReader interface {
	GetInquiry(ctx context.Context, id string) (Inquiry, error)
	// ListInquiries returns the newest inquiries first.
	ListInquiries(ctx context.Context, limit int) ([]Inquiry, error)
}
