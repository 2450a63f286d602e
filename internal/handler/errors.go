package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"service_marketplace/internal/middleware"
	"service_marketplace/internal/model"
	"service_marketplace/internal/service"
	"service_marketplace/internal/validation"

	"github.com/gin-gonic/gin"
)

// writeError maps service and validation errors onto HTTP responses.
// Unexpected errors are logged and reported as a generic 500.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
	case errors.Is(err, service.ErrWorkerNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrWorkerProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrWorkerProfileExists),
		errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		requestID, _ := c.Get(middleware.RequestIDKey)
		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "request_id": requestID})
	}
}

// bindJSON decodes the request body into dst and runs its validation rules
func bindJSON(c *gin.Context, v *validation.Validator, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validation.FromDecodeError(err)
	}
	return v.Validate(dst)
}

// Helper to get the authenticated user from context
func getAuthUser(c *gin.Context) (*model.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, service.ErrUnauthenticated
	}
	return user, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.NewFieldError("id", "must be a positive integer")
	}
	return id, nil
}
