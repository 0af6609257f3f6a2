package handlers

import (
	"net/http"

	"ats/internal/domain/models"
	"ats/internal/services"
	"ats/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /offers
func (h *Handler) ListOffers(c *gin.Context) {
	req, ok := listRequest(c, validation.OfferList)
	if !ok {
		return
	}
	page, err := h.offerService(c).List(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respondList(c, "offers", page)
}

// GET /offers/:slug
func (h *Handler) GetOffer(c *gin.Context) {
	o, err := h.offerService(c).Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// POST /offers
func (h *Handler) CreateOffer(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := bindBody(c, validation.CreateOfferBody)
	if !ok {
		return
	}
	o, err := h.offerService(c).Create(c.Request.Context(), services.CreateOfferInput{
		Job:          body.String("job"),
		AnnualSalary: int64(body.Int("annualSalary", 0)),
		ContractType: models.Contract(body.String("contractType")),
		Owner:        body.String("owner"),
	}, u)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// GET /offers/:slug/sheet
func (h *Handler) GetOfferSheet(c *gin.Context) {
	pdfBytes, filename, err := h.docsService(c).GenerateOfferSheet(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
