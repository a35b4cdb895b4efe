package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultGenerateURL is the upstream generateContent endpoint. The model and
// API version are part of the path.
const DefaultGenerateURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash-latest:generateContent"

// GenerateConfig holds configuration for the generate service
type GenerateConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// generateService implements the GenerateService interface
type generateService struct {
	baseURL string
	client  *http.Client
}

// NewGenerateService creates a new generate service instance
func NewGenerateService(config *GenerateConfig) GenerateService {
	if config == nil {
		config = &GenerateConfig{}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultGenerateURL
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &generateService{
		baseURL: baseURL,
		client:  client,
	}
}

// GenerateContent forwards payload to the upstream API
func (s *generateService) GenerateContent(ctx context.Context, apiKey string, payload []byte) (*GenerateResult, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint, err := s.endpoint(apiKey)
	if err != nil {
		return nil, NewGenerateError("build request", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, NewGenerateError("build request", 0, redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, NewGenerateError("request", 0, redactURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewGenerateError("read response", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseUpstreamError(resp.StatusCode, body)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, NewGenerateError("decode response", resp.StatusCode, err)
	}

	return &GenerateResult{Text: ExtractText(decoded)}, nil
}

// endpoint appends the API key to the base URL as the "key" query parameter
func (s *generateService) endpoint(apiKey string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid upstream URL: %w", redactURL(err))
	}

	query := u.Query()
	query.Set("key", apiKey)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// upstreamErrorBody is the error envelope returned by the upstream API
type upstreamErrorBody struct {
	Error *struct {
		Message json.RawMessage `json:"message"`
	} `json:"error"`
}

// parseUpstreamError turns a non-success upstream response into an
// UpstreamError. A body that is not JSON or has no usable error.message
// yields a GenerateError instead.
func parseUpstreamError(statusCode int, body []byte) error {
	var envelope upstreamErrorBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		return NewGenerateError("decode error response", statusCode, err)
	}

	if envelope.Error == nil {
		return NewGenerateError("decode error response", statusCode, ErrMalformedUpstreamError)
	}

	message, ok := messageText(envelope.Error.Message)
	if !ok {
		return NewGenerateError("decode error response", statusCode, ErrMalformedUpstreamError)
	}

	return &UpstreamError{
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
	}
}

// messageText renders a scalar error message as text. Strings are used as
// is, numbers and booleans by their literal. Null, objects and arrays are
// not messages.
func messageText(raw json.RawMessage) (string, bool) {
	var value any
	if len(raw) == 0 || json.Unmarshal(raw, &value) != nil {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	case float64, bool:
		return string(bytes.TrimSpace(raw)), true
	default:
		return "", false
	}
}

// ExtractText walks candidates[0].content.parts[0].text in a decoded
// response. It returns "" if any link is missing or has an unexpected type.
func ExtractText(response any) string {
	root, ok := response.(map[string]any)
	if !ok {
		return ""
	}

	candidates, ok := root["candidates"].([]any)
	if !ok || len(candidates) == 0 {
		return ""
	}

	candidate, ok := candidates[0].(map[string]any)
	if !ok {
		return ""
	}

	content, ok := candidate["content"].(map[string]any)
	if !ok {
		return ""
	}

	parts, ok := content["parts"].([]any)
	if !ok || len(parts) == 0 {
		return ""
	}

	part, ok := parts[0].(map[string]any)
	if !ok {
		return ""
	}

	text, ok := part["text"].(string)
	if !ok {
		return ""
	}

	return text
}
