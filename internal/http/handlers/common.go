package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ats/internal/domain"
	"ats/internal/domain/models"
	"ats/internal/http/middleware"
	"ats/internal/query"
	"ats/internal/services"
	"ats/internal/validation"

	"github.com/gin-gonic/gin"
)

// listRequest decodes the query string of a list route against schema.
func listRequest(c *gin.Context, schema validation.Schema) (services.ListRequest, bool) {
	opts, err := validation.DecodeQuery(schema, c.Request.URL.RawQuery)
	if err != nil {
		_ = c.Error(err)
		return services.ListRequest{}, false
	}
	return services.ListRequest{
		Path:    c.Request.URL.Path,
		RawURL:  c.Request.URL.RequestURI(),
		Options: opts,
	}, true
}

// bindBody decodes a JSON object body against schema.
func bindBody(c *gin.Context, schema validation.Schema) (query.Options, bool) {
	var input map[string]any
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		input = map[string]any{}
	} else if err := json.NewDecoder(c.Request.Body).Decode(&input); err != nil {
		_ = c.Error(domain.ValidationError{Msg: "body must be a JSON object", Err: err})
		return nil, false
	}
	if input == nil {
		input = map[string]any{}
	}

	opts, err := validation.Decode(schema, input)
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return opts, true
}

// respondList writes {<collection>: items, metadata}.
func respondList[T any](c *gin.Context, collection string, page services.Page[T]) {
	c.JSON(http.StatusOK, gin.H{collection: page.Items, "metadata": page.Metadata})
}

// currentUser returns the user authenticated by middleware.RequireSession.
func currentUser(c *gin.Context) (models.User, bool) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(domain.MissingCredentialsError{})
	}
	return u, ok
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(domain.ValidationError{Msg: name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
