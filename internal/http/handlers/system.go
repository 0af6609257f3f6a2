package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /health
func (h *Handler) Health(c *gin.Context) {
	status, dbStatus := http.StatusOK, "ok"
	if h.DB == nil {
		status, dbStatus = http.StatusServiceUnavailable, "not connected"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			status, dbStatus = http.StatusServiceUnavailable, "unreachable"
		}
	}
	c.JSON(status, gin.H{"status": http.StatusText(status), "database": dbStatus})
}
