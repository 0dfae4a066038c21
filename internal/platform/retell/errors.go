package retell

import (
	"errors"
	"fmt"
)

// Error definitions for the retell package.
var (
	// ErrMissingAPIKey is returned when the client is constructed without an API key.
	ErrMissingAPIKey = errors.New("retell API key cannot be empty")

	// ErrMissingCallID is returned when the provider reports success without a call_id.
	ErrMissingCallID = errors.New("retell response did not include a call_id")

	// ErrInvalidResponse is returned when the provider response is not a JSON object.
	ErrInvalidResponse = errors.New("invalid retell response")
)

// APIError is returned when Retell answers with a non-2xx status code.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("retell API error (status %d): %s", e.StatusCode, e.Message)
}
