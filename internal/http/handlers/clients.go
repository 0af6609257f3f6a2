package handlers

import (
	"net/http"

	"ats/internal/services"
	"ats/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /clients
func (h *Handler) ListClients(c *gin.Context) {
	req, ok := listRequest(c, validation.ClientList)
	if !ok {
		return
	}
	page, err := h.clientService(c).List(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, "clients", page)
}

// GET /clients/:slug
func (h *Handler) GetClient(c *gin.Context) {
	client, err := h.clientService(c).Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// POST /clients
func (h *Handler) CreateClient(c *gin.Context) {
	body, ok := bindBody(c, validation.CreateClientBody)
	if !ok {
		return
	}
	client, err := h.clientService(c).Create(c.Request.Context(), services.CreateClientInput{
		Name:           body.String("name"),
		Phone:          body.String("phone"),
		AccountManager: body.String("accountManager"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, client)
}
