package license

import (
	"errors"
	"fmt"
)

var (
	ErrLicenseNotFound        = errors.New("license not found")
	ErrDuplicateLicense       = errors.New("license already exists for this customer and product")
	ErrInvalidQuantity        = errors.New("quantity must be greater than zero")
	ErrInvalidValidity        = errors.New("validity period must be at least one month")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrCurrencyNotCarried     = errors.New("currency not carried by license")
	ErrConcurrentModification = errors.New("license was modified concurrently")
	ErrInvalidEventType       = errors.New("invalid event type")
)

func ErrDuplicateFor(customerID, productID uint) error {
	return fmt.Errorf("%w: customer=%d product=%d (use upgrade instead)", ErrDuplicateLicense, customerID, productID)
}

func ErrValidityMonths(months int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidValidity, months)
}
