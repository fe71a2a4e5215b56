// Package id generates URL-safe identifiers for domain records.
package id

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
)

// encoding is standard base32 with a lowercase alphabet and no padding, which
// keeps identifiers URL-safe and case-stable.
var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// NewID returns a 26-character lowercase identifier derived from UUIDv4
// random bytes.
func NewID() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate id bytes: %w", err)
	}

	// UUIDv4 version and RFC 4122 variant bits.
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80

	return encoding.EncodeToString(raw), nil
}
