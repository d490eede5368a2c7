package handlers

import (
	"errors"
	"net/http"

	"channel-relay/internal/auth"
	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/logger"

	"github.com/gin-gonic/gin"
)

// callerID returns the authenticated platform user id, writing 401 when absent
func callerID(c *gin.Context) (int64, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrMissingCallerID.Error()})
		return 0, false
	}
	return userID, true
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrTokenAlreadyUsed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err), apperrors.IsUnresolvedChatReference(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
