package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubBillingRoutes mirrors the billing handler's route layout
type stubBillingRoutes struct{}

func (stubBillingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhooks/stripe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"received": true})
	})

	billing := rg.Group("/billing")
	{
		billing.POST("/session", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"url": "https://checkout.example.com/cs_1"})
		})
		billing.GET("/subscription", func(c *gin.Context) {
			c.String(http.StatusOK, "premium")
		})
	}
}

// stubSystemRoutes mirrors the system handler's route layout
type stubSystemRoutes struct{}

func (stubSystemRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(stubBillingRoutes{})

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	r.Register(stubSystemRoutes{})
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", w.Body.String())
}

func TestRouterRegistersAllGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(stubBillingRoutes{}).
		Register(stubSystemRoutes{})
	r.Setup()

	tests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/webhooks/stripe"},
		{"POST", "/api/v1/billing/session"},
		{"GET", "/api/v1/billing/subscription"},
		{"GET", "/api/v1/health"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Route %s %s should work", tt.method, tt.path)
	}
}

func TestRouterVersionPrefix(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	r.Register(stubSystemRoutes{})
	r.Setup()

	t.Run("routes live under the configured version", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v2/health", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other versions are not registered", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
