package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/echoslice/pkg/models"
)

// writeError maps domain errors onto HTTP statuses. The body shape matches
// the original API: {"detail": "..."}.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, models.ErrClipNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
