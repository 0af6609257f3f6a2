package handlers

import (
	"net/http"

	"ats/internal/domain/models"
	"ats/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /interviews
func (h *Handler) ListInterviews(c *gin.Context) {
	req, ok := listRequest(c, validation.InterviewList)
	if !ok {
		return
	}
	page, err := h.interviewService(c).List(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, "interviews", page)
}

// GET /processes
func (h *Handler) ListProcesses(c *gin.Context) {
	req, ok := listRequest(c, validation.ProcessList)
	if !ok {
		return
	}
	page, err := h.processService(c).List(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, "processes", page)
}

// GET /processes/:id
func (h *Handler) GetProcess(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.processService(c).Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /processes/:id/status
func (h *Handler) UpdateProcessStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	body, ok := bindBody(c, validation.ProcessStatusBody)
	if !ok {
		return
	}
	p, err := h.processService(c).UpdateStatus(c.Request.Context(), id, models.ProcessStatus(body.String("status")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}
