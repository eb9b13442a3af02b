package usecases

import (
	"context"
	"errors"

	"github.com/corpit/licensedesk/internal/domain/user"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
)

func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}

	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return apperrors.NewNotFoundError("user not found")
	case errors.Is(err, user.ErrUsernameTaken):
		return apperrors.NewConflictError("username already exists")
	case errors.Is(err, user.ErrSameUsername), errors.Is(err, user.ErrPasswordMismatch):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		return apperrors.NewUnauthorizedError(err.Error())
	case apperrors.IsDuplicateError(err):
		return apperrors.NewConflictError("username already exists")
	case apperrors.IsConnectionError(err):
		return apperrors.NewUnavailableError("user store is unavailable", err.Error())
	default:
		return err
	}
}

// loadVerified fetches the user and checks password against the stored hash.
func loadVerified(ctx context.Context, repo user.Repository, hasher user.PasswordHasher, userID uint, password string) (*user.User, error) {
	u, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	if err := hasher.Verify(password, u.PasswordHash()); err != nil {
		return nil, apperrors.NewUnauthorizedError("password is incorrect")
	}
	return u, nil
}
