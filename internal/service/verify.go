package service

import (
	"math/rand"
	"strings"
	"unicode/utf8"

	"visaportal/internal/models"
)

// Verifier applies structural checks to the account credential fields.
// There is no real identity verification behind it: the rules below are the
// whole check, applied in order with the first failing rule winning.
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify classifies a credential pair. The success wording varies; callers
// must branch on OK, not on Message.
func (v *Verifier) Verify(username, secret string) models.VerificationResult {
	if username == "" || secret == "" {
		return models.VerificationResult{OK: false, Message: "Verification failed: missing credential"}
	}
	// Length counts characters, not bytes, so multi-byte secrets aren't
	// over-counted.
	if utf8.RuneCountInString(secret) < 6 {
		return models.VerificationResult{OK: false, Message: "Verification failed: secret too short"}
	}
	if strings.Contains(username, " ") {
		return models.VerificationResult{OK: false, Message: "Verification failed: invalid username"}
	}

	messages := []string{
		"Account '" + username + "' verified successfully",
		"Credentials accepted - user '" + username + "' authenticated",
		"Verification complete - account confirmed",
	}
	return models.VerificationResult{OK: true, Message: messages[rand.Intn(len(messages))]}
}
