package handlers

// User-facing messages. Clients match on these strings.
const (
	MethodNotAllowedMessage = "Method Not Allowed"
	MissingAPIKeyMessage    = "API key is not configured on the server."
	UpstreamErrorPrefix     = "Google AI API Error: "
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateResponse is the body returned when the upstream call succeeds
type GenerateResponse struct {
	Text string `json:"text"`
}
