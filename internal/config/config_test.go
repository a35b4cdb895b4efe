package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Expected default port 8081, got %s", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected development environment, got %s", cfg.Environment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected info log level, got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("Expected production environment")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug log level, got %s", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid",
			config:  Config{Environment: "test", Port: "8080", LogLevel: "info"},
			wantErr: false,
		},
		{
			name:    "unknown environment",
			config:  Config{Environment: "staging", Port: "8080", LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			config:  Config{Environment: "test", Port: "http", LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{Environment: "test", Port: "8080", LogLevel: "verbose"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAPIKeyIsReadPerCall(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	if key := APIKey(); key != "" {
		t.Errorf("Expected empty key, got %q", key)
	}

	t.Setenv(APIKeyEnv, "rotated-key")
	if key := APIKey(); key != "rotated-key" {
		t.Errorf("Expected rotated-key, got %q", key)
	}
}

func TestGetDeploymentMode(t *testing.T) {
	t.Run("Server", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
		t.Setenv("VERCEL", "")
		if mode := GetDeploymentMode(); mode != ModeServer {
			t.Errorf("Expected %s, got %s", ModeServer, mode)
		}
		if IsServerlessMode() {
			t.Error("Expected non-serverless mode")
		}
	})

	t.Run("Lambda", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "generate")
		t.Setenv("AWS_REGION", "us-east-1")
		cfg := GetServerlessConfig()
		if cfg.Mode != ModeLambda {
			t.Errorf("Expected %s, got %s", ModeLambda, cfg.Mode)
		}
		if cfg.FunctionName != "generate" {
			t.Errorf("Expected function name generate, got %s", cfg.FunctionName)
		}
		if cfg.Region != "us-east-1" {
			t.Errorf("Expected region us-east-1, got %s", cfg.Region)
		}
	})

	t.Run("Vercel", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
		t.Setenv("VERCEL", "1")
		t.Setenv("VERCEL_ENV", "preview")
		cfg := GetServerlessConfig()
		if cfg.Mode != ModeVercel {
			t.Errorf("Expected %s, got %s", ModeVercel, cfg.Mode)
		}
		if cfg.Stage != "preview" {
			t.Errorf("Expected stage preview, got %s", cfg.Stage)
		}
	})
}

func TestGetOptimizedConfigServerless(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "generate")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := GetOptimizedConfig()
	if err != nil {
		t.Fatalf("GetOptimizedConfig failed: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("Expected production environment in Lambda, got %s", cfg.Environment)
	}
}
