package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on quote endpoint reachability).
type HealthHandler struct {
	quotePing func(ctx context.Context) error
}

// NewHealthHandler constructs a HealthHandler with the provided ping function,
// typically quote.HTTPSource.Ping.
func NewHealthHandler(quotePing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{quotePing: quotePing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the quote endpoint is reachable, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.quotePing != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if h.quotePing(ctx) != nil {
				c.JSON(503, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
