package valorant

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidLanguage indicates an unsupported display-language tag
	ErrInvalidLanguage = errors.New("invalid language tag")
	// ErrInvalidParameters indicates the API rejected the request parameters
	ErrInvalidParameters = errors.New("invalid or missing parameters")
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("resource not found")
)

// APIError represents a valorant-api.com error response
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("valorant-api error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes to their sentinel errors so
// callers can use errors.Is
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrInvalidParameters
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsBadRequest checks if the error indicates rejected parameters
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// DecodeError represents a malformed success payload
type DecodeError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying decode failure
func (e *DecodeError) Unwrap() error {
	return e.Err
}
