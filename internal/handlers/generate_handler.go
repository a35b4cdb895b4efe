package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gemini-proxy-api/internal/config"
	"gemini-proxy-api/internal/middleware"
	"gemini-proxy-api/internal/services"
	"gemini-proxy-api/pkg/lambda"
)

// KeyFunc returns the upstream API key, or "" when none is configured
type KeyFunc func() string

// GenerateHandler handles generate requests
type GenerateHandler struct {
	generateService services.GenerateService
	apiKey          KeyFunc
}

// NewGenerateHandler creates a new generate handler. A nil apiKey reads the
// key from the environment on every request.
func NewGenerateHandler(generateService services.GenerateService, apiKey KeyFunc) *GenerateHandler {
	if apiKey == nil {
		apiKey = config.APIKey
	}
	return &GenerateHandler{
		generateService: generateService,
		apiKey:          apiKey,
	}
}

// @Summary Generate content
// @Description Forward a generateContent request body to the upstream API and return the first candidate's text
// @Tags generate
// @Accept json
// @Produce json
// @Param request body object true "generateContent request body, forwarded unchanged"
// @Success 200 {object} GenerateResponse
// @Failure 405 {string} string "Method Not Allowed"
// @Failure 500 {object} ErrorResponse
// @Router /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	resp := h.process(c.Request.Context(), c.GetString(middleware.RequestIDKey), c.Request.Method, c.GetRawData)
	for k, v := range resp.Headers {
		if k != "Content-Type" {
			c.Header(k, v)
		}
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}

// HandleGenerate is the Lambda counterpart of Generate
func (h *GenerateHandler) HandleGenerate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	requestID := req.Header(middleware.RequestIDHeader)
	if requestID == "" {
		requestID = req.RequestID
	}

	resp := h.process(ctx, requestID, req.Method, func() ([]byte, error) {
		return req.Body, nil
	})
	return resp, nil
}

// process runs the proxy flow. readBody is only called once the method and
// key checks have passed.
func (h *GenerateHandler) process(ctx context.Context, requestID, method string, readBody func() ([]byte, error)) *lambda.Response {
	logger := logrus.WithField("request_id", requestID)

	if method != http.MethodPost {
		return &lambda.Response{
			StatusCode: http.StatusMethodNotAllowed,
			Headers: map[string]string{
				"Content-Type": "text/plain; charset=utf-8",
				"Allow":        http.MethodPost,
			},
			Body: []byte(MethodNotAllowedMessage),
		}
	}

	apiKey := h.apiKey()
	if apiKey == "" {
		logger.Error("Upstream API key is not configured")
		return jsonResponse(http.StatusInternalServerError, ErrorResponse{Error: MissingAPIKeyMessage})
	}

	body, err := readBody()
	if err != nil {
		logger.WithError(err).Error("Failed to read request body")
		return internalError()
	}

	result, err := h.generateService.GenerateContent(ctx, apiKey, body)
	if err != nil {
		if upstreamErr, ok := services.AsUpstreamError(err); ok {
			logger.WithFields(logrus.Fields{
				"upstream_status": upstreamErr.StatusCode,
				"upstream_body":   string(upstreamErr.Body),
			}).Warn("Google AI API Error")
			return jsonResponse(upstreamErr.StatusCode, ErrorResponse{Error: UpstreamErrorPrefix + upstreamErr.Message})
		}

		if errors.Is(err, services.ErrMissingAPIKey) {
			return jsonResponse(http.StatusInternalServerError, ErrorResponse{Error: MissingAPIKeyMessage})
		}

		logger.WithError(err).Error("Generate request failed")
		return internalError()
	}

	return jsonResponse(http.StatusOK, GenerateResponse{Text: result.Text})
}

func jsonResponse(statusCode int, payload any) *lambda.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return internalError()
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Body:       body,
	}
}

func internalError() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Body:       []byte(`{"error":"` + middleware.InternalErrorMessage + `"}`),
	}
}
