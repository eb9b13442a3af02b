package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corpit/licensedesk/internal/infrastructure/permission"
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers"
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
)

type MasterDataRouteConfig struct {
	CustomerHandler      *handlers.CustomerHandler
	ProductHandler       *handlers.ProductHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupMasterDataRoutes registers the customer and product catalogues. Reads
// are open to every signed-in user; changes are admin only by policy.
func SetupMasterDataRoutes(engine *gin.Engine, config *MasterDataRouteConfig) {
	perm := config.PermissionMiddleware

	customers := engine.Group("/customers")
	customers.Use(config.AuthMiddleware.RequireAuth())
	{
		customers.GET("",
			perm.RequirePermission(permission.ResourceCustomer, permission.ActionRead),
			config.CustomerHandler.ListCustomers)
		customers.POST("",
			perm.RequirePermission(permission.ResourceCustomer, permission.ActionWrite),
			config.CustomerHandler.CreateCustomer)
		customers.GET("/:id",
			perm.RequirePermission(permission.ResourceCustomer, permission.ActionRead),
			config.CustomerHandler.GetCustomer)
		customers.PUT("/:id",
			perm.RequirePermission(permission.ResourceCustomer, permission.ActionWrite),
			config.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id",
			perm.RequirePermission(permission.ResourceCustomer, permission.ActionDelete),
			config.CustomerHandler.DeleteCustomer)
	}

	products := engine.Group("/products")
	products.Use(config.AuthMiddleware.RequireAuth())
	{
		products.GET("",
			perm.RequirePermission(permission.ResourceProduct, permission.ActionRead),
			config.ProductHandler.ListProducts)
		products.POST("",
			perm.RequirePermission(permission.ResourceProduct, permission.ActionWrite),
			config.ProductHandler.CreateProduct)
		products.GET("/:id",
			perm.RequirePermission(permission.ResourceProduct, permission.ActionRead),
			config.ProductHandler.GetProduct)
		products.PUT("/:id",
			perm.RequirePermission(permission.ResourceProduct, permission.ActionWrite),
			config.ProductHandler.UpdateProduct)
		products.DELETE("/:id",
			perm.RequirePermission(permission.ResourceProduct, permission.ActionDelete),
			config.ProductHandler.DeleteProduct)
	}
}
