// Package id generates identifiers for stored records.
//
// IDs are UUIDv7 values encoded as lowercase base32hex without padding:
// 26 characters from [0-9a-v] that sort in creation order.
package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// NewID returns a new time-ordered identifier.
func NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(value[:])), nil
}

// Parse decodes an identifier produced by NewID.
func Parse(raw string) (uuid.UUID, error) {
	decoded, err := encoding.DecodeString(strings.ToUpper(strings.TrimSpace(raw)))
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode id %q: %w", raw, err)
	}
	value, err := uuid.FromBytes(decoded)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode id %q: %w", raw, err)
	}
	return value, nil
}
