package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /analytics/candidate-acquisition-over-time
func (h *Handler) CandidateAcquisition(c *gin.Context) {
	points, err := h.analyticsService(c).CandidateAcquisition(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GET /analytics/client-acquisition-over-time
func (h *Handler) ClientAcquisition(c *gin.Context) {
	points, err := h.analyticsService(c).ClientAcquisition(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, points)
}
