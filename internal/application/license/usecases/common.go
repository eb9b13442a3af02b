package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
)

// Settings carries the classification inputs shared by license use cases.
type Settings struct {
	ExpiringSoonDays int
	// Today overrides the business calendar day, for tests and back-dated reports.
	Today func() time.Time
}

func (s Settings) today() time.Time {
	if s.Today != nil {
		return biztime.Date(s.Today())
	}
	return biztime.Today()
}

func (s Settings) threshold() int {
	if s.ExpiringSoonDays < 0 {
		return 0
	}
	return s.ExpiringSoonDays
}

// toAppError maps domain and repository failures onto the API error taxonomy.
func toAppError(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}

	switch {
	case errors.Is(err, license.ErrLicenseNotFound):
		return apperrors.NewNotFoundError("license not found")
	case errors.Is(err, license.ErrDuplicateLicense):
		return apperrors.NewConflictError("license already exists for this customer and product; use upgrade instead", err.Error())
	case errors.Is(err, license.ErrConcurrentModification):
		return apperrors.NewConflictError("license was modified concurrently, reload and retry")
	case errors.Is(err, license.ErrInvalidQuantity),
		errors.Is(err, license.ErrInvalidValidity),
		errors.Is(err, license.ErrInvalidAmount),
		errors.Is(err, license.ErrCurrencyNotCarried):
		return apperrors.NewValidationError(err.Error())
	case apperrors.IsConnectionError(err):
		return apperrors.NewUnavailableError("license store is unavailable", err.Error())
	default:
		return err
	}
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := biztime.ParseDate(value)
	if err != nil {
		return nil, apperrors.NewValidationError(field + " must be a date in YYYY-MM-DD format")
	}
	return &d, nil
}

// lookups loads the customers and products referenced by licenses.
type lookups struct {
	customers map[uint]*customer.Customer
	products  map[uint]*product.Product
}

func loadLookups(ctx context.Context, customers customer.Repository, products product.Repository, licenses []*license.License) (*lookups, error) {
	customerIDs := make([]uint, 0, len(licenses))
	productIDs := make([]uint, 0, len(licenses))
	for _, l := range licenses {
		customerIDs = append(customerIDs, l.CustomerID())
		productIDs = append(productIDs, l.ProductID())
	}

	cs, err := customers.GetByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	ps, err := products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	return &lookups{customers: cs, products: ps}, nil
}
