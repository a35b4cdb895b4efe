package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"gemini-proxy-api/internal/config"
	"gemini-proxy-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	GenerateService services.GenerateService

	// Internal dependencies
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithServices(cfg, &services.ServiceConfig{})
}

// NewContainerWithServices creates a container with explicit service
// configuration, e.g. a different upstream endpoint in tests
func NewContainerWithServices(cfg *config.Config, serviceConfig *services.ServiceConfig) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	if err := ConfigureLogging(cfg); err != nil {
		return nil, err
	}

	serviceContainer, err := services.NewServiceContainer(serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"environment":     cfg.Environment,
		"deployment_mode": config.GetDeploymentMode(),
	}).Debug("Container initialized")

	return &Container{
		Config:          cfg,
		GenerateService: serviceContainer.GenerateService,
		services:        serviceContainer,
	}, nil
}

// ConfigureLogging applies the configured log level and picks the JSON
// formatter for production and serverless deployments
func ConfigureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	if cfg.IsProduction() || config.IsServerlessMode() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	return nil
}
