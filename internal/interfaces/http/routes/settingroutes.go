package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/infrastructure/permission"
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers"
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingsHandler      *handlers.SettingsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/settings")
	settings.Use(
		config.AuthMiddleware.RequireAuth(),
		config.PermissionMiddleware.RequirePermission(permission.ResourceSettings, permission.ActionUpdate),
	)
	{
		settings.PUT("/username", config.SettingsHandler.ChangeUsername)
		settings.PUT("/password", config.SettingsHandler.ChangePassword)
		settings.DELETE("/account", config.SettingsHandler.DeleteAccount)
	}
}
