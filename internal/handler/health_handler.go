package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexasta/internal/model"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	providers []string
}

// NewHealthHandler creates a new HealthHandler for the configured model providers.
func NewHealthHandler(providers []string) *HealthHandler {
	return &HealthHandler{providers: providers}
}

// Liveness handles GET /healthz
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /readyz. The service is ready when every configured
// provider has a registered client.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	registered := make(map[string]bool)
	for _, name := range model.Registered() {
		registered[name] = true
	}
	for _, p := range h.providers {
		if !registered[p] {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: "model provider not registered: " + p})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
