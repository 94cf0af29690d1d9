package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/gin-gonic/gin"
)

// renderError maps the error kind to a transport status: ValidationError and
// NotFoundError are caller-correctable, everything else is a 500 with the
// detail kept out of the response.
func renderError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.HTML(http.StatusBadRequest, "error.tmpl", gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.HTML(http.StatusNotFound, "error.tmpl", gin.H{"error": notFoundErr.Error()})
	default:
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"error": "Internal server error"})
	}
}
