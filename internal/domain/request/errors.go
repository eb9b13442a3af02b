package request

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

func ErrInvalidTransition(from, to Status) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
