package http

import (
	customerUsecases "github.com/corpit/licensedesk/internal/application/customer/usecases"
	licenseUsecases "github.com/corpit/licensedesk/internal/application/license/usecases"
	notificationUsecases "github.com/corpit/licensedesk/internal/application/notification/usecases"
	productUsecases "github.com/corpit/licensedesk/internal/application/product/usecases"
	requestUsecases "github.com/corpit/licensedesk/internal/application/request/usecases"
	userUsecases "github.com/corpit/licensedesk/internal/application/user/usecases"
)

// allUseCases holds every application use case, grouped by bounded context.
type allUseCases struct {
	// User & Auth
	registerUser   *userUsecases.RegisterUserUseCase
	login          *userUsecases.LoginWithPasswordUseCase
	changeUsername *userUsecases.ChangeUsernameUseCase
	changePassword *userUsecases.ChangePasswordUseCase
	deleteAccount  *userUsecases.DeleteAccountUseCase

	// Master data
	createCustomer *customerUsecases.CreateCustomerUseCase
	updateCustomer *customerUsecases.UpdateCustomerUseCase
	getCustomer    *customerUsecases.GetCustomerUseCase
	listCustomers  *customerUsecases.ListCustomersUseCase
	deleteCustomer *customerUsecases.DeleteCustomerUseCase
	createProduct  *productUsecases.CreateProductUseCase
	updateProduct  *productUsecases.UpdateProductUseCase
	getProduct     *productUsecases.GetProductUseCase
	listProducts   *productUsecases.ListProductsUseCase
	deleteProduct  *productUsecases.DeleteProductUseCase

	// License lifecycle
	issueLicense   *licenseUsecases.IssueLicenseUseCase
	upgradeLicense *licenseUsecases.UpgradeLicenseUseCase
	renewLicense   *licenseUsecases.RenewLicenseUseCase
	deleteLicense  *licenseUsecases.DeleteLicenseUseCase
	getLicense     *licenseUsecases.GetLicenseUseCase
	listLicenses   *licenseUsecases.ListLicensesUseCase
	listRenewals   *licenseUsecases.ListRenewalsUseCase
	dashboardStats *licenseUsecases.GetDashboardStatsUseCase

	// Notification
	listExpiring     *notificationUsecases.ListExpiringUseCase
	sendReminders    *notificationUsecases.SendRemindersUseCase
	runReminders     *notificationUsecases.RunRemindersUseCase
	sendTestReminder *notificationUsecases.SendTestReminderUseCase

	// Requests
	submitRequest  *requestUsecases.SubmitRequestUseCase
	listRequests   *requestUsecases.ListRequestsUseCase
	processRequest *requestUsecases.ProcessRequestUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	licenseSettings := licenseUsecases.Settings{
		ExpiringSoonDays: c.cfg.License.ExpiringSoonDays,
	}
	notificationSettings := notificationUsecases.Settings{
		CompanyName:      c.cfg.Notification.CompanyName,
		ExpiringSoonDays: c.cfg.License.ExpiringSoonDays,
		SendTimeout:      c.cfg.Notification.SendTimeout,
	}
	minPasswordLength := c.cfg.Auth.Password.MinLength

	var loginLimiter userUsecases.LoginLimiter
	if c.loginLimiter != nil {
		loginLimiter = c.loginLimiter
	}

	c.ucs = &allUseCases{
		registerUser:   userUsecases.NewRegisterUserUseCase(r.userRepo, c.hasher, minPasswordLength, log),
		login:          userUsecases.NewLoginWithPasswordUseCase(r.userRepo, c.hasher, c.jwtSvc, loginLimiter, log),
		changeUsername: userUsecases.NewChangeUsernameUseCase(r.userRepo, c.hasher, log),
		changePassword: userUsecases.NewChangePasswordUseCase(r.userRepo, c.hasher, minPasswordLength, log),
		deleteAccount:  userUsecases.NewDeleteAccountUseCase(r.userRepo, c.hasher, log),

		createCustomer: customerUsecases.NewCreateCustomerUseCase(r.customerRepo, log),
		updateCustomer: customerUsecases.NewUpdateCustomerUseCase(r.customerRepo, log),
		getCustomer:    customerUsecases.NewGetCustomerUseCase(r.customerRepo, log),
		listCustomers:  customerUsecases.NewListCustomersUseCase(r.customerRepo, log),
		deleteCustomer: customerUsecases.NewDeleteCustomerUseCase(r.customerRepo, r.licenseRepo, log),
		createProduct:  productUsecases.NewCreateProductUseCase(r.productRepo, log),
		updateProduct:  productUsecases.NewUpdateProductUseCase(r.productRepo, log),
		getProduct:     productUsecases.NewGetProductUseCase(r.productRepo, log),
		listProducts:   productUsecases.NewListProductsUseCase(r.productRepo, log),
		deleteProduct:  productUsecases.NewDeleteProductUseCase(r.productRepo, r.licenseRepo, log),

		issueLicense: licenseUsecases.NewIssueLicenseUseCase(
			r.licenseRepo, r.eventRepo, r.customerRepo, r.productRepo, c.txManager, licenseSettings, log),
		upgradeLicense: licenseUsecases.NewUpgradeLicenseUseCase(
			r.licenseRepo, r.eventRepo, r.customerRepo, r.productRepo, c.txManager, licenseSettings, log),
		renewLicense: licenseUsecases.NewRenewLicenseUseCase(
			r.licenseRepo, r.renewalRepo, r.eventRepo, r.customerRepo, r.productRepo, c.txManager, licenseSettings, log),
		deleteLicense: licenseUsecases.NewDeleteLicenseUseCase(
			r.licenseRepo, r.renewalRepo, r.eventRepo, c.txManager, log),
		getLicense: licenseUsecases.NewGetLicenseUseCase(
			r.licenseRepo, r.renewalRepo, r.eventRepo, r.customerRepo, r.productRepo, licenseSettings, log),
		listLicenses: licenseUsecases.NewListLicensesUseCase(
			r.licenseRepo, r.customerRepo, r.productRepo, licenseSettings, log),
		listRenewals: licenseUsecases.NewListRenewalsUseCase(r.renewalRepo, log),
		dashboardStats: licenseUsecases.NewGetDashboardStatsUseCase(
			r.licenseRepo, r.eventRepo, r.customerRepo, licenseSettings, log),

		listExpiring: notificationUsecases.NewListExpiringUseCase(
			r.licenseRepo, r.customerRepo, r.productRepo, notificationSettings, log),
		sendReminders: notificationUsecases.NewSendRemindersUseCase(
			r.licenseRepo, r.customerRepo, r.productRepo, r.notificationRepo, c.dispatcher, c.renderer, notificationSettings, log),
		runReminders: notificationUsecases.NewRunRemindersUseCase(
			r.licenseRepo, r.customerRepo, r.productRepo, r.notificationRepo, c.dispatcher, c.renderer, notificationSettings, log),
		sendTestReminder: notificationUsecases.NewSendTestReminderUseCase(
			r.licenseRepo, r.customerRepo, r.productRepo, c.dispatcher, c.renderer, notificationSettings, log),

		submitRequest:  requestUsecases.NewSubmitRequestUseCase(r.requestRepo, r.userRepo, c.dispatcher, c.renderer, log),
		listRequests:   requestUsecases.NewListRequestsUseCase(r.requestRepo, log),
		processRequest: requestUsecases.NewProcessRequestUseCase(r.requestRepo, log),
	}
}
