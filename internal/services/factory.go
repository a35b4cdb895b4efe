package services

import (
	"fmt"
	"net/http"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	GenerateService GenerateService

	httpClient *http.Client
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	GenerateConfig *GenerateConfig
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(config *ServiceConfig) (*ServiceContainer, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	generateConfig := &GenerateConfig{}
	if config.GenerateConfig != nil {
		*generateConfig = *config.GenerateConfig
	}

	// No client timeout: the upstream call is bounded by the request context
	// and whatever the hosting platform enforces.
	if generateConfig.HTTPClient == nil {
		generateConfig.HTTPClient = &http.Client{}
	}

	sc := &ServiceContainer{
		GenerateService: NewGenerateService(generateConfig),
		httpClient:      generateConfig.HTTPClient,
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return sc, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.GenerateService == nil {
		return fmt.Errorf("generate service is nil")
	}

	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	if sc.httpClient != nil {
		sc.httpClient.CloseIdleConnections()
	}
	return nil
}
