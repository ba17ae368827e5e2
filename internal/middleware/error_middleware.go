package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/webssis/ssis/internal/app/models/dto"
	"github.com/webssis/ssis/internal/pkg/apperrors"
)

// HandleAPIError maps an application error to its HTTP status and writes
// {"error": message}. Unclassified errors are data-access failures and are
// surfaced verbatim with 500.
func HandleAPIError(c *gin.Context, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, dto.NewErrorResponse(message))
}

func classify(err error) (int, string) {
	var custom *apperrors.CustomError
	hasMessage := errors.As(err, &custom) && custom.Message != ""
	msg := func(fallback string) string {
		if hasMessage {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, msg("Validation failed")
	case errors.Is(err, apperrors.ErrInvalidReference):
		return http.StatusBadRequest, msg("Referenced record does not exist")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, msg("User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, msg("Resource not found")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, msg("Invalid password")
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, msg("Resource already exists")
	case errors.Is(err, apperrors.ErrNotificationFailed):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// Recovery converts a panic in a handler into a 500 JSON response
func Recovery(lgr zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		lgr.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	})
}
