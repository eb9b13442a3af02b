package usecases

import (
	"context"
	"fmt"

	"github.com/corpit/licensedesk/internal/application/notification/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/markdown"
)

// RunRemindersCommand drives one unattended reminder run.
type RunRemindersCommand struct {
	// Within overrides the expiring-soon threshold when set.
	Within *int
	// DryRun reports what would be sent without sending or recording anything.
	DryRun bool
}

// RunRemindersUseCase emails every expired and expiring-soon license that has
// not already received the same kind of reminder today.
type RunRemindersUseCase struct {
	licenseRepo      license.Repository
	customerRepo     customer.Repository
	productRepo      product.Repository
	notificationRepo notification.Repository
	dispatcher       notification.Dispatcher
	composer         composer
	logger           logger.Interface
}

func NewRunRemindersUseCase(
	licenseRepo license.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	notificationRepo notification.Repository,
	dispatcher notification.Dispatcher,
	renderer markdown.Renderer,
	settings Settings,
	logger logger.Interface,
) *RunRemindersUseCase {
	return &RunRemindersUseCase{
		licenseRepo:      licenseRepo,
		customerRepo:     customerRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		composer:         composer{renderer: renderer, settings: settings},
		logger:           logger,
	}
}

func (uc *RunRemindersUseCase) Execute(ctx context.Context, cmd RunRemindersCommand) (*dto.SendRemindersResponse, error) {
	within := uc.composer.settings.threshold()
	if cmd.Within != nil {
		if *cmd.Within < 0 {
			return nil, errors.NewValidationError("within must not be negative")
		}
		within = *cmd.Within
	}
	today := uc.composer.settings.today()

	uc.logger.Infow("executing run reminders use case",
		"within", within,
		"dry_run", cmd.DryRun,
		"as_of", biztime.FormatDate(today),
	)

	licenses, err := uc.licenseRepo.FindExpiringOnOrBefore(ctx, today.AddDate(0, 0, within))
	if err != nil {
		uc.logger.Errorw("failed to find expiring licenses", "error", err)
		return nil, toAppError(err)
	}
	customers, products, err := loadRefs(ctx, uc.customerRepo, uc.productRepo, licenses)
	if err != nil {
		uc.logger.Errorw("failed to load license references", "error", err)
		return nil, toAppError(err)
	}

	// Run-level classification uses the effective window so --within widens
	// what counts as expiring.
	runComposer := uc.composer
	runComposer.settings.ExpiringSoonDays = within
	since := biztime.DayStartUTC(today)

	resp := &dto.SendRemindersResponse{Outcomes: make([]dto.ReminderOutcome, 0, len(licenses))}
	for _, l := range licenses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cust, prod := customers[l.CustomerID()], products[l.ProductID()]
		if cust == nil || prod == nil {
			resp.Outcomes = append(resp.Outcomes, dto.ReminderOutcome{LicenseID: l.ID(), Error: "license references a missing customer or product"})
			resp.Failed++
			continue
		}

		typ, msg := runComposer.compose(l, cust, prod, "", false)
		outcome := dto.ReminderOutcome{LicenseID: l.ID(), Recipient: cust.Email(), Type: string(typ)}

		already, err := uc.notificationRepo.SentSince(ctx, l.ID(), typ, since)
		if err != nil {
			uc.logger.Errorw("failed to check notification history", "license_id", l.ID(), "error", err)
			return nil, toAppError(err)
		}
		if already {
			outcome.Skipped = true
			resp.Outcomes = append(resp.Outcomes, outcome)
			resp.Skipped++
			continue
		}

		if cmd.DryRun {
			resp.Outcomes = append(resp.Outcomes, outcome)
			continue
		}

		sendErr := send(ctx, uc.dispatcher, runComposer.sendTimeout(), cust.Email(), msg)
		if sendErr != nil {
			uc.logger.Warnw("scheduled reminder failed", "license_id", l.ID(), "recipient", cust.Email(), "error", sendErr)
			outcome.Error = sendErr.Error()
			resp.Failed++
		} else {
			outcome.Sent = true
			resp.Sent++
		}
		resp.Outcomes = append(resp.Outcomes, outcome)

		record, err := notification.NewRenewalNotification(l.ID(), l.CustomerID(), l.ProductID(), typ, cust.Email(), sendErr)
		if err == nil {
			err = uc.notificationRepo.Record(ctx, record)
		}
		if err != nil {
			uc.logger.Errorw("failed to record reminder attempt", "license_id", l.ID(), "error", err)
		}
	}

	resp.Total = len(resp.Outcomes)
	if cmd.DryRun {
		resp.Message = fmt.Sprintf("would send %d of %d reminders", resp.Total-resp.Skipped-resp.Failed, resp.Total)
	} else {
		resp.Message = fmt.Sprintf("sent %d of %d reminders", resp.Sent, resp.Total)
	}

	uc.logger.Infow("reminder run finished",
		"sent", resp.Sent,
		"failed", resp.Failed,
		"skipped", resp.Skipped,
		"dry_run", cmd.DryRun,
	)
	return resp, nil
}
