package errors

import "net/http"

// GatewayError carries an upstream payment-gateway failure so the handler can
// mirror the gateway's HTTP status and surface its response body unchanged.
type GatewayError struct {
	statusCode int
	body       string
	err        error
}

// NewGatewayError wraps an upstream failure. A zero statusCode defaults to 500.
func NewGatewayError(statusCode int, body string, err error) *GatewayError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	return &GatewayError{
		statusCode: statusCode,
		body:       body,
		err:        err,
	}
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return "payment gateway request failed"
}

// Unwrap exposes the underlying transport error, if any.
func (e *GatewayError) Unwrap() error {
	return e.err
}

// HTTPCode returns the gateway's HTTP status code.
func (e *GatewayError) HTTPCode() int {
	return e.statusCode
}

// ErrorCode returns the business error code
func (e *GatewayError) ErrorCode() string {
	return "PAYMENT_GATEWAY_ERROR"
}

// Message returns the user-friendly error message
func (e *GatewayError) Message() string {
	return "payment gateway request failed"
}

// Details returns the gateway's response body verbatim.
func (e *GatewayError) Details() string {
	return e.body
}
