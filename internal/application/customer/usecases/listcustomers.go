package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/customer/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/mapper"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

// ListCustomersUseCase lists customers ordered by name
type ListCustomersUseCase struct {
	repo   customer.Repository
	logger logger.Interface
}

func NewListCustomersUseCase(repo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, req dto.ListCustomersRequest) (*dto.ListCustomersResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)

	customers, total, err := uc.repo.List(ctx, customer.ListFilter{
		Search:   req.Search,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, toAppError(err)
	}

	items := mapper.MapSlice(customers, dto.ToCustomerResponse)
	if items == nil {
		items = []dto.CustomerResponse{}
	}

	return &dto.ListCustomersResponse{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
