package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/shared/db"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type DeleteLicenseCommand struct {
	LicenseID uint
	Actor     string
}

type DeleteLicenseUseCase struct {
	licenseRepo license.Repository
	renewalRepo license.RenewalRepository
	eventRepo   license.EventRepository
	tx          db.TxRunner
	logger      logger.Interface
}

func NewDeleteLicenseUseCase(
	licenseRepo license.Repository,
	renewalRepo license.RenewalRepository,
	eventRepo license.EventRepository,
	tx db.TxRunner,
	logger logger.Interface,
) *DeleteLicenseUseCase {
	return &DeleteLicenseUseCase{
		licenseRepo: licenseRepo,
		renewalRepo: renewalRepo,
		eventRepo:   eventRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Execute removes the renewal ledger entries, then the license, and records
// a deleted event carrying the final state.
func (uc *DeleteLicenseUseCase) Execute(ctx context.Context, cmd DeleteLicenseCommand) error {
	uc.logger.Infow("executing delete license use case", "license_id", cmd.LicenseID)

	if cmd.LicenseID == 0 {
		return errors.NewValidationError("license ID is required")
	}

	var removedRenewals int64
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		l, err := uc.licenseRepo.GetByID(txCtx, cmd.LicenseID)
		if err != nil {
			return err
		}
		if l == nil {
			return license.ErrLicenseNotFound
		}

		removedRenewals, err = uc.renewalRepo.DeleteByLicenseID(txCtx, l.ID())
		if err != nil {
			return err
		}

		if err := uc.licenseRepo.Delete(txCtx, l.ID()); err != nil {
			return err
		}

		event, err := license.NewEvent(l.ID(), license.EventTypeDeleted, cmd.Actor, l.Snapshot(), nil)
		if err != nil {
			return err
		}
		return uc.eventRepo.Append(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete license", "license_id", cmd.LicenseID, "error", err)
		return toAppError(err)
	}

	uc.logger.Infow("license deleted successfully",
		"license_id", cmd.LicenseID,
		"renewals_removed", removedRenewals,
	)
	return nil
}
