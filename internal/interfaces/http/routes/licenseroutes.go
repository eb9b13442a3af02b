package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/infrastructure/permission"
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers"
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
)

type LicenseRouteConfig struct {
	LicenseHandler       *handlers.LicenseHandler
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupLicenseRoutes(engine *gin.Engine, config *LicenseRouteConfig) {
	perm := config.PermissionMiddleware
	read := perm.RequirePermission(permission.ResourceLicense, permission.ActionRead)
	write := perm.RequirePermission(permission.ResourceLicense, permission.ActionWrite)

	licenses := engine.Group("/licenses")
	licenses.Use(config.AuthMiddleware.RequireAuth())
	{
		licenses.GET("", read, config.LicenseHandler.ListLicenses)
		licenses.POST("", write, config.LicenseHandler.IssueLicense)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		licenses.POST("/:id/upgrade", write, config.LicenseHandler.UpgradeLicense)
		licenses.POST("/:id/renew", write, config.LicenseHandler.RenewLicense)
		licenses.GET("/:id/renewals", read, config.LicenseHandler.ListRenewals)

		licenses.GET("/:id", read, config.LicenseHandler.GetLicense)
		licenses.DELETE("/:id",
			perm.RequirePermission(permission.ResourceLicense, permission.ActionDelete),
			config.LicenseHandler.DeleteLicense)
	}

	engine.GET("/dashboard",
		config.AuthMiddleware.RequireAuth(),
		perm.RequirePermission(permission.ResourceDashboard, permission.ActionRead),
		config.DashboardHandler.GetDashboard)
}
