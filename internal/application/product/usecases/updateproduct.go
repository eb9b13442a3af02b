package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/product/dto"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// UpdateProductUseCase replaces a product's catalog entry. Existing licenses
// keep the validity they were issued with.
type UpdateProductUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewUpdateProductUseCase(repo product.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, id uint, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "id", id)
		return nil, toAppError(err)
	}
	if p == nil {
		return nil, toAppError(product.ErrProductNotFound)
	}

	if err := p.Update(req.Details()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.repo.ExistsByName(ctx, p.Name(), p.ID())
	if err != nil {
		uc.logger.Errorw("failed to check product name existence", "error", err, "name", p.Name())
		return nil, toAppError(err)
	}
	if exists {
		return nil, toAppError(product.ErrProductNameExists)
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update product", "error", err, "id", id)
		return nil, toAppError(err)
	}

	uc.logger.Infow("product updated successfully", "id", p.ID())

	resp := dto.ToProductResponse(p)
	return &resp, nil
}
