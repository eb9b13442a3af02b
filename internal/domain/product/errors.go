package product

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductNameExists = errors.New("product name already exists")
	ErrProductInUse      = errors.New("product has licenses")
)

func ErrInUse(licenseCount int64) error {
	return fmt.Errorf("%w: %d license(s) must be deleted first", ErrProductInUse, licenseCount)
}
