package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/product/dto"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// CreateProductUseCase adds a product to the catalog
type CreateProductUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewCreateProductUseCase(repo product.Repository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := product.NewProduct(req.Details())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.repo.ExistsByName(ctx, p.Name(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check product name existence", "error", err, "name", p.Name())
		return nil, toAppError(err)
	}
	if exists {
		return nil, toAppError(product.ErrProductNameExists)
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to save product", "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("product created successfully",
		"id", p.ID(),
		"name", p.Name(),
		"type", p.Type(),
	)

	resp := dto.ToProductResponse(p)
	return &resp, nil
}
