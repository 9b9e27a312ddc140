package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier_Verify(t *testing.T) {
	t.Parallel()

	const secret = "sk_test_secret"
	verifier := NewSignatureVerifier(&config.Config{
		Paystack: &config.PaystackConfig{SecretKey: secret},
	})

	body := []byte(`{"event":"charge.success","data":{"reference":"store_ref_1"}}`)

	t.Run("valid signature", func(t *testing.T) {
		t.Parallel()

		assert.True(t, verifier.Verify(body, signBody(secret, body)))
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		assert.False(t, verifier.Verify(body, signBody("sk_other_secret", body)))
	})

	t.Run("tampered body", func(t *testing.T) {
		t.Parallel()

		signature := signBody(secret, body)
		tampered := []byte(`{"event":"charge.success","data":{"reference":"store_ref_2"}}`)
		assert.False(t, verifier.Verify(tampered, signature))
	})

	t.Run("empty signature", func(t *testing.T) {
		t.Parallel()

		assert.False(t, verifier.Verify(body, ""))
	})

	t.Run("malformed signature", func(t *testing.T) {
		t.Parallel()

		assert.False(t, verifier.Verify(body, "not-hex"))
	})
}

func TestSignatureVerifier_NoSecretConfigured(t *testing.T) {
	t.Parallel()

	verifier := NewSignatureVerifier(&config.Config{})
	assert.False(t, verifier.Verify([]byte("body"), "deadbeef"))
}
