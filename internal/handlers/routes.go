package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gemini-proxy-api/internal/config"
	"gemini-proxy-api/internal/middleware"
	"gemini-proxy-api/internal/services"
)

// GeneratePath is where the proxy endpoint is mounted
const GeneratePath = "/api/generate"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	GenerateService services.GenerateService
	APIKey          KeyFunc
	Version         string
}

// NewRouter builds a gin engine with middleware and routes installed
func NewRouter(cfg *config.Config, routerConfig *RouterConfig) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	SetupMiddleware(router)
	SetupRoutes(router, routerConfig)

	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, routerConfig *RouterConfig) {
	generateHandler := NewGenerateHandler(routerConfig.GenerateService, routerConfig.APIKey)

	version := routerConfig.Version
	if version == "" {
		version = "1.0.0"
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"service":         "gemini-proxy-api",
			"version":         version,
			"deployment_mode": config.GetDeploymentMode(),
		})
	})

	// Every method reaches the handler so non-POST requests get a 405
	// from the proxy itself rather than the router. Any only covers the
	// standard methods; NoRoute catches the rest (PROPFIND, PURGE, ...).
	router.Any(GeneratePath, generateHandler.Generate)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == GeneratePath {
			generateHandler.Generate(c)
		}
	})
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	// Request ID
	router.Use(middleware.RequestID())

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Panics become the generic internal error response
	router.Use(middleware.Recovery())

	// Performance monitoring
	router.Use(middleware.PerformanceMonitor(10 * time.Second))
}
