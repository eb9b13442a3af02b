package customer

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerNameExists = errors.New("customer name already exists")
	ErrCustomerInUse      = errors.New("customer has licenses")
)

func ErrInUse(licenseCount int64) error {
	return fmt.Errorf("%w: %d license(s) must be deleted first", ErrCustomerInUse, licenseCount)
}
