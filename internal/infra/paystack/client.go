// Package paystack implements the payment gateway contract against the
// Paystack REST API.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	defaultBaseURL        = "https://api.paystack.co"
	defaultRequestTimeout = 15 * time.Second
)

// Client talks to the Paystack transaction API. Amounts are passed through
// in minor currency units, which is also Paystack's wire format.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	logger     *slog.Logger
}

// envelope is Paystack's uniform response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// New creates a Paystack API client from config.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Paystack == nil || cfg.Paystack.SecretKey == "" {
		return nil, errors.New("paystack secret key is not configured")
	}

	baseURL := cfg.Paystack.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		baseURL:    baseURL,
		secretKey:  cfg.Paystack.SecretKey,
		logger:     logger,
	}, nil
}

var _ service.PaymentGateway = (*Client)(nil)

// Initialize creates a payment authorization with the gateway.
func (c *Client) Initialize(ctx context.Context, req *service.InitializeRequest) (*service.InitializeResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal initialize request")
	}

	data, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var result service.InitializeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode initialize response")
	}
	result.Raw = data

	return &result, nil
}

// Verify fetches the gateway's view of a transaction by reference.
func (c *Client) Verify(ctx context.Context, reference string) (*service.VerifyResult, error) {
	data, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var result service.VerifyResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode verify response")
	}
	result.Raw = data

	return &result, nil
}

// do sends one API request and unwraps Paystack's response envelope.
// Non-2xx responses and envelopes with status=false come back as
// *domainerrors.GatewayError carrying the upstream status and body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewGatewayError(0, "", errors.Wrap(err, "gateway request failed"))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewGatewayError(resp.StatusCode, "", errors.Wrap(err, "failed to read gateway response"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnContext(ctx, "gateway returned non-2xx response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("statusCode", resp.StatusCode),
		)

		return nil, domainerrors.NewGatewayError(resp.StatusCode, string(respBody),
			errors.Errorf("gateway responded with status %d", resp.StatusCode))
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, errors.Wrap(err, "failed to decode gateway envelope")
	}
	if !env.Status {
		return nil, domainerrors.NewGatewayError(resp.StatusCode, string(respBody),
			errors.Errorf("gateway rejected request: %s", env.Message))
	}

	return env.Data, nil
}
