package http

import (
	"gorm.io/gorm"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/infrastructure/repository"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo         user.Repository
	customerRepo     customer.Repository
	productRepo      product.Repository
	licenseRepo      license.Repository
	renewalRepo      license.RenewalRepository
	eventRepo        license.EventRepository
	notificationRepo notification.Repository
	requestRepo      request.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		customerRepo:     repository.NewCustomerRepository(db, log),
		productRepo:      repository.NewProductRepository(db, log),
		licenseRepo:      repository.NewLicenseRepository(db, log),
		renewalRepo:      repository.NewRenewalRepository(db),
		eventRepo:        repository.NewLicenseEventRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		requestRepo:      repository.NewRequestRepository(db),
	}
}
