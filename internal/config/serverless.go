package config

import (
	"os"
)

// Deployment modes
const (
	ModeServer = "server"
	ModeLambda = "lambda"
	ModeVercel = "vercel"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	Mode         string
	FunctionName string
	Region       string
	Stage        string
}

// GetServerlessConfig detects the platform the process is running on
func GetServerlessConfig() *ServerlessConfig {
	cfg := &ServerlessConfig{
		Mode:  GetDeploymentMode(),
		Stage: GetEnv("STAGE", "dev"),
	}

	switch cfg.Mode {
	case ModeLambda:
		cfg.FunctionName = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
		cfg.Region = os.Getenv("AWS_REGION")
	case ModeVercel:
		cfg.Region = os.Getenv("VERCEL_REGION")
		cfg.Stage = GetEnv("VERCEL_ENV", cfg.Stage)
	}

	return cfg
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// isRunningOnVercel detects the Vercel function runtime
func isRunningOnVercel() bool {
	return GetEnvAsBool("VERCEL", false)
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetDeploymentMode() != ModeServer
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	switch {
	case isRunningInLambda():
		return ModeLambda
	case isRunningOnVercel():
		return ModeVercel
	default:
		return ModeServer
	}
}

// GetOptimizedConfig returns configuration adapted to the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	// Serverless platforms collect stdout as structured log lines, so
	// default them to production settings unless told otherwise.
	if IsServerlessMode() && os.Getenv("ENVIRONMENT") == "" {
		config.Environment = "production"
	}

	return config, nil
}
