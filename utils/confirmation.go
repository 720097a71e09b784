package utils

import (
	"crypto/rand"
	"fmt"

	"stayease-backend/domain"
)

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ConfirmationPrefix returns the human-visible prefix for a booking type:
// AC for property stays, BK for service and experience bookings.
func ConfirmationPrefix(kind domain.EntityKind) string {
	if kind == domain.KindProperty {
		return "AC"
	}
	return "BK"
}

// GenerateConfirmationNumber produces a URL-safe, human-shareable number:
// a 2-letter prefix followed by 8 random uppercase alphanumerics.
// Uniqueness against the existing collection is the caller's job.
func GenerateConfirmationNumber(kind domain.EntityKind) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate confirmation number: %w", err)
	}
	for i, b := range buf {
		buf[i] = confirmationAlphabet[int(b)%len(confirmationAlphabet)]
	}
	return ConfirmationPrefix(kind) + string(buf), nil
}
