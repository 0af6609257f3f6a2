package handlers

import (
	"net/http"

	"ats/internal/auth"
	"ats/internal/services"
	"ats/internal/validation"

	"github.com/gin-gonic/gin"
)

type sessionResponse struct {
	User      any        `json:"user"`
	XSRFToken auth.Token `json:"xsrfToken"`
}

// POST /authentication/users
func (h *Handler) Register(c *gin.Context) {
	body, ok := bindBody(c, validation.RegisterBody)
	if !ok {
		return
	}
	sess, err := h.authService(c).Register(c.Request.Context(), services.RegisterInput{
		FirstName: body.String("firstName"),
		LastName:  body.String("lastName"),
		Email:     body.String("email"),
		Password:  body.String("password"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.writeSession(c, http.StatusCreated, sess)
}

// POST /authentication/sessions
func (h *Handler) Login(c *gin.Context) {
	body, ok := bindBody(c, validation.LoginBody)
	if !ok {
		return
	}
	sess, err := h.authService(c).Login(c.Request.Context(), services.LoginInput{
		Email:    body.String("email"),
		Password: body.String("password"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.writeSession(c, http.StatusOK, sess)
}

// DELETE /authentication/sessions
func (h *Handler) Logout(c *gin.Context) {
	c.Header("Set-Cookie", h.Tokens.ClearCookie())
	c.Status(http.StatusOK)
}

// GET /authentication/sessions/token
func (h *Handler) Refresh(c *gin.Context) {
	cookie, _ := c.Cookie(auth.CookieName)
	pair, err := h.authService(c).Refresh(cookie, c.GetHeader(auth.XSRFHeader))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Set-Cookie", h.Tokens.Cookie(pair.Refresh))
	c.JSON(http.StatusOK, gin.H{"xsrfToken": pair.Access})
}

func (h *Handler) writeSession(c *gin.Context, status int, sess services.Session) {
	c.Header("Set-Cookie", h.Tokens.Cookie(sess.Refresh))
	c.JSON(status, sessionResponse{User: sess.User, XSRFToken: sess.Access})
}
