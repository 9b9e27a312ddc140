package service

// ResetTokenService issues and digests password reset tokens. Only digests
// are ever persisted.
type ResetTokenService interface {
	// Generate creates a random raw token and its storage digest.
	Generate() (raw string, digest string, err error)

	// Digest recomputes the storage digest for a raw token.
	Digest(raw string) string
}
