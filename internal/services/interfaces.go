package services

import (
	"context"
)

// GenerateService defines the interface for generative-content operations
type GenerateService interface {
	// GenerateContent forwards payload unchanged to the upstream
	// generateContent endpoint, authenticated with apiKey, and returns the
	// text of the first candidate.
	GenerateContent(ctx context.Context, apiKey string, payload []byte) (*GenerateResult, error)
}

// GenerateResult is the text extracted from an upstream success response
type GenerateResult struct {
	Text string `json:"text"`
}
