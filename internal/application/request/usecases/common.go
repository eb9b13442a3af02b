package usecases

import (
	"errors"

	"github.com/corpit/licensedesk/internal/domain/request"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
)

func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}

	switch {
	case errors.Is(err, request.ErrRequestNotFound):
		return apperrors.NewNotFoundError("request not found")
	case errors.Is(err, request.ErrInvalidStatusTransition):
		return apperrors.NewValidationError(err.Error())
	case apperrors.IsConnectionError(err):
		return apperrors.NewUnavailableError("request store is unavailable", err.Error())
	default:
		return err
	}
}
