package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/interfaces/http/handlers"
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// RateLimiter is nil when Redis is not configured.
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if config.RateLimiter != nil {
		auth.Use(config.RateLimiter.Limit())
	}
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
