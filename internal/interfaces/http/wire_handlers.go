package http

import (
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	settingsHandler     *handlers.SettingsHandler
	customerHandler     *handlers.CustomerHandler
	productHandler      *handlers.ProductHandler
	licenseHandler      *handlers.LicenseHandler
	dashboardHandler    *handlers.DashboardHandler
	notificationHandler *handlers.NotificationHandler
	requestHandler      *handlers.RequestHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) initHandlers() error {
	u := c.ucs
	log := c.log

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		authHandler:     handlers.NewAuthHandler(u.registerUser, u.login, log),
		settingsHandler: handlers.NewSettingsHandler(u.changeUsername, u.changePassword, u.deleteAccount, log),
		customerHandler: handlers.NewCustomerHandler(
			u.createCustomer, u.updateCustomer, u.getCustomer, u.listCustomers, u.deleteCustomer, log),
		productHandler: handlers.NewProductHandler(
			u.createProduct, u.updateProduct, u.getProduct, u.listProducts, u.deleteProduct, log),
		licenseHandler: handlers.NewLicenseHandler(
			u.issueLicense, u.upgradeLicense, u.renewLicense, u.deleteLicense,
			u.getLicense, u.listLicenses, u.listRenewals, log),
		dashboardHandler:    handlers.NewDashboardHandler(u.dashboardStats, log),
		notificationHandler: handlers.NewNotificationHandler(u.listExpiring, u.sendReminders, u.sendTestReminder, log),
		requestHandler:      handlers.NewRequestHandler(u.submitRequest, u.listRequests, u.processRequest, log),
		healthHandler:       handlers.NewHealthHandler(sqlDB, log),
	}
	return nil
}
