package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// DeleteCustomerUseCase removes a customer that no longer holds licenses
type DeleteCustomerUseCase struct {
	repo     customer.Repository
	licenses LicenseCounter
	logger   logger.Interface
}

func NewDeleteCustomerUseCase(repo customer.Repository, licenses LicenseCounter, logger logger.Interface) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		repo:     repo,
		licenses: licenses,
		logger:   logger,
	}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id uint) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "id", id)
		return toAppError(err)
	}
	if c == nil {
		return toAppError(customer.ErrCustomerNotFound)
	}

	count, err := uc.licenses.CountByCustomerID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to count customer licenses", "error", err, "id", id)
		return toAppError(err)
	}
	if count > 0 {
		uc.logger.Warnw("refusing to delete customer with licenses", "id", id, "licenses", count)
		return toAppError(customer.ErrInUse(count))
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete customer", "error", err, "id", id)
		return toAppError(err)
	}

	uc.logger.Infow("customer deleted successfully", "id", id, "name", c.Name())
	return nil
}
