package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("Generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))

		id := rec.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected generated UUID, got %q", id)
		}
		if rec.Body.String() != id {
			t.Errorf("Context request ID %q differs from header %q", rec.Body.String(), id)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("Expected propagated request ID, got %q", got)
		}
	})
}

func TestRecovery(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(Recovery())
	router.POST("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":"An internal server error occurred."}` {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.ErrorLevel {
		t.Error("Expected panic to be logged at error level")
	}
}

func TestStructuredLogger(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(RequestID(), StructuredLogger())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/teapot", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	tests := []struct {
		path  string
		level logrus.Level
	}{
		{"/ok", logrus.InfoLevel},
		{"/teapot", logrus.WarnLevel},
		{"/fail", logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			hook.Reset()
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			entry := hook.LastEntry()
			if entry == nil {
				t.Fatal("Expected a log entry")
			}
			if entry.Level != tt.level {
				t.Errorf("Expected level %s, got %s", tt.level, entry.Level)
			}
			if entry.Data["path"] != tt.path {
				t.Errorf("Expected path %s, got %v", tt.path, entry.Data["path"])
			}
			if entry.Data["request_id"] == "" {
				t.Error("Expected request_id field")
			}
		})
	}
}

func TestPerformanceMonitor(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(PerformanceMonitor(time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		time.Sleep(5 * time.Millisecond)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))

	entry := hook.LastEntry()
	if entry == nil || entry.Message != "Slow request detected" {
		t.Fatalf("Expected slow request warning, got %v", entry)
	}
}
