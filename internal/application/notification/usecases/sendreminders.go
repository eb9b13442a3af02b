package usecases

import (
	"context"
	"fmt"

	"github.com/corpit/licensedesk/internal/application/notification/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/markdown"
)

type SendRemindersUseCase struct {
	licenseRepo      license.Repository
	customerRepo     customer.Repository
	productRepo      product.Repository
	notificationRepo notification.Repository
	dispatcher       notification.Dispatcher
	composer         composer
	logger           logger.Interface
}

func NewSendRemindersUseCase(
	licenseRepo license.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	notificationRepo notification.Repository,
	dispatcher notification.Dispatcher,
	renderer markdown.Renderer,
	settings Settings,
	logger logger.Interface,
) *SendRemindersUseCase {
	return &SendRemindersUseCase{
		licenseRepo:      licenseRepo,
		customerRepo:     customerRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		composer:         composer{renderer: renderer, settings: settings},
		logger:           logger,
	}
}

// Execute emails a reminder to the customer of each license. Every attempt is
// logged to the notification history; one failure does not stop the rest.
func (uc *SendRemindersUseCase) Execute(ctx context.Context, req dto.SendRemindersRequest) (*dto.SendRemindersResponse, error) {
	uc.logger.Infow("executing send reminders use case", "licenses", len(req.LicenseIDs))

	if len(req.LicenseIDs) == 0 {
		return nil, errors.NewValidationError("at least one license must be selected")
	}

	noteHTML, err := uc.composer.noteHTML(req.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	resp := &dto.SendRemindersResponse{Outcomes: make([]dto.ReminderOutcome, 0, len(req.LicenseIDs))}
	seen := make(map[uint]bool, len(req.LicenseIDs))
	for _, id := range req.LicenseIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		outcome := uc.remind(ctx, id, noteHTML)
		resp.Outcomes = append(resp.Outcomes, outcome)
		if outcome.Sent {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}
	resp.Total = len(resp.Outcomes)
	resp.Message = fmt.Sprintf("sent %d of %d reminders", resp.Sent, resp.Total)

	uc.logger.Infow("reminders sent", "sent", resp.Sent, "failed", resp.Failed)
	return resp, nil
}

func (uc *SendRemindersUseCase) remind(ctx context.Context, licenseID uint, noteHTML string) dto.ReminderOutcome {
	outcome := dto.ReminderOutcome{LicenseID: licenseID}

	l, err := uc.licenseRepo.GetByID(ctx, licenseID)
	if err != nil || l == nil {
		outcome.Error = "license not found"
		if err != nil {
			uc.logger.Errorw("failed to load license for reminder", "license_id", licenseID, "error", err)
			outcome.Error = "failed to load license"
		}
		return outcome
	}

	cust, err := uc.customerRepo.GetByID(ctx, l.CustomerID())
	if err != nil || cust == nil {
		outcome.Error = "customer not found"
		return outcome
	}
	prod, err := uc.productRepo.GetByID(ctx, l.ProductID())
	if err != nil || prod == nil {
		outcome.Error = "product not found"
		return outcome
	}

	typ, msg := uc.composer.compose(l, cust, prod, noteHTML, false)
	outcome.Recipient = cust.Email()
	outcome.Type = string(typ)

	sendErr := send(ctx, uc.dispatcher, uc.composer.sendTimeout(), cust.Email(), msg)
	if sendErr != nil {
		uc.logger.Errorw("failed to send reminder",
			"license_id", l.ID(),
			"recipient", cust.Email(),
			"error", sendErr,
		)
		outcome.Error = sendErr.Error()
	} else {
		outcome.Sent = true
	}

	record, err := notification.NewRenewalNotification(l.ID(), l.CustomerID(), l.ProductID(), typ, cust.Email(), sendErr)
	if err == nil {
		err = uc.notificationRepo.Record(ctx, record)
	}
	if err != nil {
		uc.logger.Errorw("failed to record reminder attempt", "license_id", l.ID(), "error", err)
	}

	return outcome
}
