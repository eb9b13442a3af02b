package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/customer/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// CreateCustomerUseCase registers a new customer
type CreateCustomerUseCase struct {
	repo   customer.Repository
	logger logger.Interface
}

func NewCreateCustomerUseCase(repo customer.Repository, logger logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := customer.NewCustomer(req.Details())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.repo.ExistsByName(ctx, c.Name(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check customer name existence", "error", err, "name", c.Name())
		return nil, toAppError(err)
	}
	if exists {
		return nil, toAppError(customer.ErrCustomerNameExists)
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("customer created successfully", "id", c.ID(), "name", c.Name())

	resp := dto.ToCustomerResponse(c)
	return &resp, nil
}
