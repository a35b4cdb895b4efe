package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"gemini-proxy-api/internal/handlers"
	"gemini-proxy-api/pkg/lambda"
)

const internalErrorBody = `{"error":"An internal server error occurred."}`

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return internalError(), nil
	}

	req, err := lambda.FromAPIGateway(event)
	if err != nil {
		logrus.WithError(err).Error("Failed to convert API Gateway event")
		return internalError(), nil
	}

	generateHandler := handlers.NewGenerateHandler(container.GenerateService, nil)

	resp, err := generateHandler.HandleGenerate(ctx, req)
	if err != nil {
		return internalError(), nil
	}

	return resp.ToAPIGateway(), nil
}

func internalError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       internalErrorBody,
	}
}

// shutdown releases the warm container when the runtime sends SIGTERM
func shutdown() {
	if err := lambda.GetConnectionManager().Cleanup(); err != nil {
		logrus.WithError(err).Error("Failed to clean up container")
		return
	}
	logrus.Info("Container cleaned up on shutdown")
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(shutdown))
}
