package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/notification/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/markdown"
)

// SendTestReminderUseCase previews a reminder by sending it to an arbitrary
// address. Test sends are not recorded in the notification history.
type SendTestReminderUseCase struct {
	licenseRepo  license.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	dispatcher   notification.Dispatcher
	composer     composer
	logger       logger.Interface
}

func NewSendTestReminderUseCase(
	licenseRepo license.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	dispatcher notification.Dispatcher,
	renderer markdown.Renderer,
	settings Settings,
	logger logger.Interface,
) *SendTestReminderUseCase {
	return &SendTestReminderUseCase{
		licenseRepo:  licenseRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		dispatcher:   dispatcher,
		composer:     composer{renderer: renderer, settings: settings},
		logger:       logger,
	}
}

func (uc *SendTestReminderUseCase) Execute(ctx context.Context, req dto.SendTestReminderRequest) (*dto.ReminderOutcome, error) {
	uc.logger.Infow("executing send test reminder use case", "license_id", req.LicenseID, "to", req.To)

	l, err := uc.licenseRepo.GetByID(ctx, req.LicenseID)
	if err != nil {
		return nil, toAppError(err)
	}
	if l == nil {
		return nil, errors.NewNotFoundError("license not found")
	}
	cust, err := uc.customerRepo.GetByID(ctx, l.CustomerID())
	if err != nil {
		return nil, toAppError(err)
	}
	prod, err := uc.productRepo.GetByID(ctx, l.ProductID())
	if err != nil {
		return nil, toAppError(err)
	}
	if cust == nil || prod == nil {
		return nil, errors.NewNotFoundError("license references a missing customer or product")
	}

	noteHTML, err := uc.composer.noteHTML(req.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	typ, msg := uc.composer.compose(l, cust, prod, noteHTML, true)
	outcome := &dto.ReminderOutcome{LicenseID: l.ID(), Recipient: req.To, Type: string(typ)}

	if err := send(ctx, uc.dispatcher, uc.composer.sendTimeout(), req.To, msg); err != nil {
		uc.logger.Errorw("failed to send test reminder", "license_id", l.ID(), "to", req.To, "error", err)
		return nil, errors.NewUnavailableError("failed to send test reminder", err.Error())
	}

	outcome.Sent = true
	return outcome, nil
}
