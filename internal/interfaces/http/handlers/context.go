package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/shared/constants"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// getUserIDFromContext retrieves the id stored by the auth middleware.
func getUserIDFromContext(c *gin.Context, log logger.Interface) (uint, error) {
	userIDInterface, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		log.Warnw("user_id not found in context", "ip", c.ClientIP())
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		log.Warnw("invalid user_id type in context", "user_id", userIDInterface, "ip", c.ClientIP())
		return 0, errors.NewInternalError("invalid user ID type")
	}

	return userID, nil
}

// actorFromContext names the caller in lifecycle events and request records.
func actorFromContext(c *gin.Context) string {
	if username := c.GetString(constants.ContextKeyUsername); username != "" {
		return username
	}
	return "system"
}
