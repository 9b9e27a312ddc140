package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	raw, digest, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Len(t, digest, 64) // hex-encoded SHA-256

	// The digest must be recomputable from the raw token.
	assert.Equal(t, digest, DigestResetToken(raw))

	// The raw token must never equal its stored digest.
	assert.NotEqual(t, raw, digest)
}

func TestGenerateResetToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		raw, _, err := GenerateResetToken()
		require.NoError(t, err)

		_, dup := seen[raw]
		assert.False(t, dup, "generated a duplicate token")
		seen[raw] = struct{}{}
	}
}

func TestDigestResetToken_Deterministic(t *testing.T) {
	assert.Equal(t, DigestResetToken("some-token"), DigestResetToken("some-token"))
	assert.NotEqual(t, DigestResetToken("some-token"), DigestResetToken("other-token"))
}
