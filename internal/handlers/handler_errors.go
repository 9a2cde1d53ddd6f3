package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/apperrors"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps the application error taxonomy onto HTTP status
// codes with one policy for every handler:
//
//	validation            -> 400
//	unauthorized          -> 401
//	forbidden             -> 403
//	not found             -> 404
//	duplicate/conflict    -> 409 (includes already-reversed and edit-past-window)
//	insufficient stock or balance -> 422
//	anything else         -> 500 with a generic message
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientStock), errors.Is(err, apperrors.ErrInsufficientBalance):
		logger.Warn("Insufficient stock or balance", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrWindowExpired):
		logger.Warn("Reversal window expired", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// identity pulls the authenticated tenant and user from the request context
// and aborts with 401 when either is missing.
func identity(c *gin.Context, logger *slog.Logger) (tenantID, userID string, ok bool) {
	tenantID, tenantOK := middleware.GetTenantIDFromContext(c)
	userID, userOK := middleware.GetUserIDFromContext(c)
	if !tenantOK || !userOK {
		logger.Error("Tenant or user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return tenantID, userID, true
}
