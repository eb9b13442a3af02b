package usecases

import (
	"context"
	"errors"

	"github.com/corpit/licensedesk/internal/domain/product"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
)

// LicenseCounter reports how many licenses reference a product.
type LicenseCounter interface {
	CountByProductID(ctx context.Context, productID uint) (int64, error)
}

func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}

	switch {
	case errors.Is(err, product.ErrProductNotFound):
		return apperrors.NewNotFoundError("product not found")
	case errors.Is(err, product.ErrProductNameExists):
		return apperrors.NewConflictError("product name already exists")
	case errors.Is(err, product.ErrProductInUse):
		return apperrors.NewConflictError("product still has licenses", err.Error())
	case apperrors.IsDuplicateError(err):
		return apperrors.NewConflictError("product name already exists")
	case apperrors.IsConnectionError(err):
		return apperrors.NewUnavailableError("product store is unavailable", err.Error())
	default:
		return err
	}
}
