package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/infrastructure/permission"
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers"
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler       *handlers.RequestHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupRequestRoutes(engine *gin.Engine, config *RequestRouteConfig) {
	perm := config.PermissionMiddleware
	process := perm.RequirePermission(permission.ResourceRequest, permission.ActionProcess)

	requests := engine.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		requests.POST("",
			perm.RequirePermission(permission.ResourceRequest, permission.ActionCreate),
			config.RequestHandler.SubmitRequest)
		requests.GET("/mine",
			perm.RequirePermission(permission.ResourceRequest, permission.ActionReadOwn),
			config.RequestHandler.ListMine)
		requests.GET("/pending", process, config.RequestHandler.ListPending)
		requests.GET("/processed", process, config.RequestHandler.ListProcessed)
		requests.PATCH("/:id/status", process, config.RequestHandler.UpdateStatus)
	}
}
