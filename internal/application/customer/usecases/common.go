package usecases

import (
	"context"
	"errors"

	"github.com/corpit/licensedesk/internal/domain/customer"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
)

// LicenseCounter reports how many licenses reference a customer.
type LicenseCounter interface {
	CountByCustomerID(ctx context.Context, customerID uint) (int64, error)
}

func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}

	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		return apperrors.NewNotFoundError("customer not found")
	case errors.Is(err, customer.ErrCustomerNameExists):
		return apperrors.NewConflictError("customer name already exists")
	case errors.Is(err, customer.ErrCustomerInUse):
		return apperrors.NewConflictError("customer still has licenses", err.Error())
	case apperrors.IsDuplicateError(err):
		return apperrors.NewConflictError("customer name already exists")
	case apperrors.IsConnectionError(err):
		return apperrors.NewUnavailableError("customer store is unavailable", err.Error())
	default:
		return err
	}
}
