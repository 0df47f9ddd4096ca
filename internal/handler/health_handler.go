package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreChecker reports the health of the backing store.
type StoreChecker func(ctx context.Context) error

// HealthHandler handles health check requests.
type HealthHandler struct {
	backend string
	check   StoreChecker
}

// NewHealthHandler creates a new HealthHandler. check may be nil for
// backends with no remote connection (memory).
func NewHealthHandler(backend string, check StoreChecker) *HealthHandler {
	return &HealthHandler{backend: backend, check: check}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"store": "healthy",
	}

	if h.check != nil {
		if err := h.check(c.Request.Context()); err != nil {
			services["store"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:   "unhealthy",
				Services: services,
			})
			return
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.check != nil {
		if err := h.check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "store": h.backend})
}

// Live handles GET /live - liveness probe.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
