package handlers

import (
	"net/http"

	"ats/internal/services"
	"ats/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /candidates
func (h *Handler) ListCandidates(c *gin.Context) {
	req, ok := listRequest(c, validation.CandidateList)
	if !ok {
		return
	}
	page, err := h.candidateService(c).List(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, "candidates", page)
}

// GET /candidates/:slug
func (h *Handler) GetCandidate(c *gin.Context) {
	candidate, err := h.candidateService(c).Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// POST /candidates
func (h *Handler) CreateCandidate(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := bindBody(c, validation.CreateCandidateBody)
	if !ok {
		return
	}
	candidate, err := h.candidateService(c).Create(c.Request.Context(), services.CreateCandidateInput{
		Name:   body.String("name"),
		Email:  body.String("email"),
		Resume: body.String("resume"),
	}, u)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}
