package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/db"
	"github.com/lucybridge/subscription-api/internal/logger"
	"github.com/lucybridge/subscription-api/internal/services"
)

// CommonServices holds the dependencies shared across handlers.
type CommonServices struct {
	db     db.Querier
	logger *zap.Logger
}

// NewCommonServices creates the shared handler dependencies.
func NewCommonServices(queries db.Querier) *CommonServices {
	return &CommonServices{
		db:     queries,
		logger: logger.Log,
	}
}

// GetLogger returns the shared logger.
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// HandleError is a helper method to handle errors consistently.
func (s *CommonServices) HandleError(c *gin.Context, err error, message string, statusCode int, logger *zap.Logger) {
	if err != nil {
		logger.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
	})
}

// HandleServiceError maps domain errors onto HTTP status codes and
// falls back to a 500 for everything unexpected.
func (s *CommonServices) HandleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		s.HandleError(c, err, "Not found", http.StatusNotFound, s.logger)
	case errors.Is(err, services.ErrOwnershipMismatch):
		s.HandleError(c, err, "Subscription does not belong to caller", http.StatusForbidden, s.logger)
	case errors.Is(err, services.ErrInvalidPlan):
		s.HandleError(c, err, "Invalid or inactive plan", http.StatusBadRequest, s.logger)
	case errors.Is(err, services.ErrNotActive):
		s.HandleError(c, err, "Subscription is not active", http.StatusConflict, s.logger)
	case errors.Is(err, services.ErrAlreadyScheduled):
		s.HandleError(c, err, "A downgrade is already scheduled", http.StatusConflict, s.logger)
	case errors.Is(err, services.ErrNoLowerTier):
		s.HandleError(c, err, "Target plan is not a lower tier", http.StatusBadRequest, s.logger)
	case errors.Is(err, services.ErrNoHigherTier):
		s.HandleError(c, err, "Target plan is not a higher tier", http.StatusBadRequest, s.logger)
	default:
		s.HandleError(c, err, fallback, http.StatusInternalServerError, s.logger)
	}
}
