package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const resetTokenBytes = 32

type resetTokenService struct{}

// NewResetTokenService exposes token generation to the application layer.
func NewResetTokenService() service.ResetTokenService {
	return resetTokenService{}
}

func (resetTokenService) Generate() (string, string, error) {
	return GenerateResetToken()
}

func (resetTokenService) Digest(raw string) string {
	return DigestResetToken(raw)
}

// GenerateResetToken creates a random password reset token. The raw token is
// mailed to the user; only its SHA-256 digest is ever persisted, so a leaked
// database dump cannot redeem outstanding resets.
func GenerateResetToken() (raw string, digest string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate reset token")
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)

	return raw, DigestResetToken(raw), nil
}

// DigestResetToken returns the hex SHA-256 digest used to look a token up.
func DigestResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
