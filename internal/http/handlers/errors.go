package handlers

import (
	"fmt"
	"net/http"

	"ats/internal/domain"
	"ats/internal/http/middleware"
	"ats/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Hint    any    `json:"hint"`
}

// ErrorHandler renders the last error pushed with c.Error once the chain is done.
// Errors that carry no HTTP status become a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(errorResponse(c, c.Errors.Last().Err))
	}
}

func errorResponse(c *gin.Context, err error) (int, ErrorResponse) {
	herr, ok := domain.AsHTTPError(err)
	if !ok || herr.Status() >= http.StatusInternalServerError {
		utils.LogError(middleware.GetRequestID(c), "http", c.Request.Method+" "+c.FullPath(), err)
		return http.StatusInternalServerError, ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Something went wrong",
			Hint:    domain.DefaultHint,
		}
	}

	hint := herr.Hint()
	if hint == nil {
		hint = domain.DefaultHint
	}
	return herr.Status(), ErrorResponse{Status: herr.Status(), Message: herr.Error(), Hint: hint}
}

// Recovery turns a handler panic into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		err, ok := rec.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", rec)
		}
		c.AbortWithStatusJSON(errorResponse(c, err))
	})
}

// NoRoute answers unknown paths with the error envelope.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  http.StatusNotFound,
		Message: "Route " + c.Request.Method + " " + c.Request.URL.Path + " not found",
		Hint:    domain.DefaultHint,
	})
}
