package handlers

import (
	"net/http"

	"ats/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /users
func (h *Handler) ListUsers(c *gin.Context) {
	req, ok := listRequest(c, validation.UserList)
	if !ok {
		return
	}
	page, err := h.userService(c).List(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, "users", page)
}

// GET /users/current
func (h *Handler) CurrentUser(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /users/:slug
func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.userService(c).Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}
