package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/product/dto"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type GetProductUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewGetProductUseCase(repo product.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "id", id)
		return nil, toAppError(err)
	}
	if p == nil {
		return nil, toAppError(product.ErrProductNotFound)
	}

	resp := dto.ToProductResponse(p)
	return &resp, nil
}
