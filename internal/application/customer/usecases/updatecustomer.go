package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/customer/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// UpdateCustomerUseCase replaces a customer's details
type UpdateCustomerUseCase struct {
	repo   customer.Repository
	logger logger.Interface
}

func NewUpdateCustomerUseCase(repo customer.Repository, logger logger.Interface) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, id uint, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "id", id)
		return nil, toAppError(err)
	}
	if c == nil {
		return nil, toAppError(customer.ErrCustomerNotFound)
	}

	if err := c.Update(req.Details()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.repo.ExistsByName(ctx, c.Name(), c.ID())
	if err != nil {
		uc.logger.Errorw("failed to check customer name existence", "error", err, "name", c.Name())
		return nil, toAppError(err)
	}
	if exists {
		return nil, toAppError(customer.ErrCustomerNameExists)
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "error", err, "id", id)
		return nil, toAppError(err)
	}

	uc.logger.Infow("customer updated successfully", "id", c.ID())

	resp := dto.ToCustomerResponse(c)
	return &resp, nil
}
