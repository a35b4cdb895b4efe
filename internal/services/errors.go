package services

import (
	"errors"
	"fmt"
	"net/url"
)

// Common generate error types
var (
	ErrMissingAPIKey          = errors.New("API key is not configured")
	ErrMalformedUpstreamError = errors.New("upstream error response has no message")
)

// UpstreamError is a non-success response from the upstream API that carried
// a readable error message
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Message)
}

// GenerateError represents a failed generate operation with additional context
type GenerateError struct {
	Op         string // Step that failed (e.g., "request", "decode")
	StatusCode int    // Upstream status code, if a response was received
	Err        error  // Underlying error
}

func (e *GenerateError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generate %s failed (upstream status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generate %s failed: %v", e.Op, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

// NewGenerateError creates a new GenerateError
func NewGenerateError(op string, statusCode int, err error) *GenerateError {
	return &GenerateError{
		Op:         op,
		StatusCode: statusCode,
		Err:        err,
	}
}

// AsUpstreamError returns the UpstreamError wrapped in err, if any
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}

// redactURL strips the request URL from transport errors. The upstream URL
// carries the API key in its query string.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
