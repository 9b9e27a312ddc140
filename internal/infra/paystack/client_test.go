package paystack

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Paystack: &config.PaystackConfig{
			SecretKey: "sk_test_secret",
			BaseURL:   server.URL,
		},
	}

	client, err := New(cfg, slog.Default())
	require.NoError(t, err)

	return client
}

func TestClient_Initialize(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		var req service.InitializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buyer@example.com", req.Email)
		assert.Equal(t, int64(50375), req.Amount)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "store_ref_1"
			}
		}`))
	})

	result, err := client.Initialize(context.Background(), &service.InitializeRequest{
		Email:     "buyer@example.com",
		Amount:    50375,
		Reference: "store_ref_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", result.AuthorizationURL)
	assert.Equal(t, "abc123", result.AccessCode)
	assert.Equal(t, "store_ref_1", result.Reference)
	assert.NotEmpty(t, result.Raw)
}

func TestClient_Verify(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/store_ref_1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"amount": 50375,
				"currency": "NGN",
				"paid_at": "2024-05-01T10:00:00.000Z"
			}
		}`))
	})

	result, err := client.Verify(context.Background(), "store_ref_1")
	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, int64(50375), result.Amount)
	assert.Equal(t, "NGN", result.Currency)
}

func TestClient_Verify_MissingStatusField(t *testing.T) {
	t.Parallel()

	// A truthy envelope whose data carries no transaction status must come
	// back with an empty Status so callers map it to a failed verification.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"amount": 50375,
				"currency": "NGN"
			}
		}`))
	})

	result, err := client.Verify(context.Background(), "store_ref_2")
	require.NoError(t, err)
	assert.Empty(t, result.Status)
}

func TestClient_GatewayErrorMirrorsUpstream(t *testing.T) {
	t.Parallel()

	upstreamBody := `{"status": false, "message": "Transaction reference not found"}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(upstreamBody))
	})

	_, err := client.Verify(context.Background(), "unknown_ref")
	require.Error(t, err)

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusNotFound, gatewayErr.HTTPCode())
	assert.JSONEq(t, upstreamBody, gatewayErr.Details())
}

func TestClient_EnvelopeRejection(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	})

	_, err := client.Initialize(context.Background(), &service.InitializeRequest{
		Email:     "buyer@example.com",
		Amount:    1000,
		Reference: "store_ref_3",
	})
	require.Error(t, err)

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Contains(t, gatewayErr.Error(), "Invalid key")
}

func TestNew_RequiresSecretKey(t *testing.T) {
	t.Parallel()

	_, err := New(&config.Config{}, slog.Default())
	assert.Error(t, err)
}
