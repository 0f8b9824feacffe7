package utils

import (
	"fmt"
	"net/mail"
	"strings"
)

// NormalizeEmail validates an email address and returns its canonical form
// (trimmed, lower-cased). The normalized form is the identity key for OTP
// issuance and user lookup.
func NormalizeEmail(email string) (bool, string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false, "", fmt.Errorf("email is empty")
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false, "", fmt.Errorf("invalid email format: %w", err)
	}

	// Reject display-name forms like "Name <a@b.com>"; only the bare address
	// is a valid identity.
	if addr.Address != trimmed {
		return false, "", fmt.Errorf("invalid email format")
	}

	return true, strings.ToLower(addr.Address), nil
}
