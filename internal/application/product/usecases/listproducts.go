package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/product/dto"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/mapper"
	"github.com/corpit/licensedesk/internal/shared/utils"
)

// ListProductsUseCase lists catalog products ordered by name
type ListProductsUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewListProductsUseCase(repo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, req dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)
	filter := product.ListFilter{
		Search:   req.Search,
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	if req.Type != "" {
		typ, err := product.ParseType(req.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &typ
	}

	products, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, toAppError(err)
	}

	items := mapper.MapSlice(products, dto.ToProductResponse)
	if items == nil {
		items = []dto.ProductResponse{}
	}

	return &dto.ListProductsResponse{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
