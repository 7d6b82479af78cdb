package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietmaphub/landmark-backend/internal/services"
)

// The landmark routes answer with a bare {"error": ...} envelope while the
// media routes answer with {"success": false, "error": ...}; both wire shapes
// are part of the API contract, so each family gets its own mapper.

func respondLandmarkError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate", "message": conflictErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error", "details": err.Error()})
	}
}

func respondMediaError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var unsupportedErr *services.UnsupportedMediaError
	var quotaErr *services.QuotaExceededError
	var tooLargeErr *services.PayloadTooLargeError
	var forbiddenErr *services.ForbiddenPathError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &unsupportedErr),
		errors.As(err, &quotaErr),
		errors.As(err, &tooLargeErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &forbiddenErr):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
