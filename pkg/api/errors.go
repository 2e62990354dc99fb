package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/services"
)

// respondError maps service-layer errors to HTTP error responses.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, gitstore.ErrSandboxViolation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "path escapes project sandbox"})
	case errors.Is(err, gitstore.ErrBadVersion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gitstore.ErrGitUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "version store unavailable"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
