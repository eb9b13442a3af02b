package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/infrastructure/permission"
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers"
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler  *handlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	perm := config.PermissionMiddleware

	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("/expiring",
			perm.RequirePermission(permission.ResourceNotification, permission.ActionRead),
			config.NotificationHandler.ListExpiring)
		notifications.POST("/reminders/test",
			perm.RequirePermission(permission.ResourceNotification, permission.ActionSend),
			config.NotificationHandler.SendTestReminder)
		notifications.POST("/reminders",
			perm.RequirePermission(permission.ResourceNotification, permission.ActionSend),
			config.NotificationHandler.SendReminders)
	}
}
