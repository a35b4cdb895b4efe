// Package handler exposes the proxy as a Vercel Go function.
package handler

import (
	"net/http"
	"sync"

	"gemini-proxy-api/internal/config"
	"gemini-proxy-api/internal/handlers"
	"gemini-proxy-api/pkg/server"
)

var (
	initOnce sync.Once
	router   http.Handler
	initErr  error
)

func setup() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		initErr = err
		return
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		initErr = err
		return
	}

	router = handlers.NewRouter(cfg, &handlers.RouterConfig{
		GenerateService: container.GenerateService,
	})
}

// Handler is the entry point for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(setup)

	if initErr != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"An internal server error occurred."}`))
		return
	}

	router.ServeHTTP(w, r)
}
