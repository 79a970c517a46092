package handlers

import (
	"net/http"

	"tripcraft/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency check made by the health monitor.
type HealthHandler struct {
	Status func() utils.HealthStatus
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{Status: utils.GetHealthStatus}
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := h.Status()
	code, label := http.StatusOK, "ok"
	if !status.Healthy() {
		code, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(code, gin.H{
		"status":    label,
		"postgres":  status.Postgres,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}
