package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/customer/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type GetCustomerUseCase struct {
	repo   customer.Repository
	logger logger.Interface
}

func NewGetCustomerUseCase(repo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, id uint) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "error", err, "id", id)
		return nil, toAppError(err)
	}
	if c == nil {
		return nil, toAppError(customer.ErrCustomerNotFound)
	}

	resp := dto.ToCustomerResponse(c)
	return &resp, nil
}
