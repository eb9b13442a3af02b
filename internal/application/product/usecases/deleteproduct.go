package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// DeleteProductUseCase removes a product no license references
type DeleteProductUseCase struct {
	repo     product.Repository
	licenses LicenseCounter
	logger   logger.Interface
}

func NewDeleteProductUseCase(repo product.Repository, licenses LicenseCounter, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		repo:     repo,
		licenses: licenses,
		logger:   logger,
	}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uint) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "id", id)
		return toAppError(err)
	}
	if p == nil {
		return toAppError(product.ErrProductNotFound)
	}

	count, err := uc.licenses.CountByProductID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to count product licenses", "error", err, "id", id)
		return toAppError(err)
	}
	if count > 0 {
		uc.logger.Warnw("refusing to delete product with licenses", "id", id, "licenses", count)
		return toAppError(product.ErrInUse(count))
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete product", "error", err, "id", id)
		return toAppError(err)
	}

	uc.logger.Infow("product deleted successfully", "id", id, "name", p.Name())
	return nil
}
