package http

import (
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
	"github.com/corpit/licensedesk/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.CustomLogger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.ErrorHandler(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		RateLimiter: c.rateLimiter,
	})

	routes.SetupSettingRoutes(c.engine, &routes.SettingRouteConfig{
		SettingsHandler:      c.hdlrs.settingsHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupMasterDataRoutes(c.engine, &routes.MasterDataRouteConfig{
		CustomerHandler:      c.hdlrs.customerHandler,
		ProductHandler:       c.hdlrs.productHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupLicenseRoutes(c.engine, &routes.LicenseRouteConfig{
		LicenseHandler:       c.hdlrs.licenseHandler,
		DashboardHandler:     c.hdlrs.dashboardHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler:  c.hdlrs.notificationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupRequestRoutes(c.engine, &routes.RequestRouteConfig{
		RequestHandler:       c.hdlrs.requestHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
