package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// ChangePasswordUseCase handles changing a user's password
type ChangePasswordUseCase struct {
	userRepo          user.Repository
	hasher            user.PasswordHasher
	minPasswordLength int
	logger            logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, hasher user.PasswordHasher, minPasswordLength int, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:          userRepo,
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error {
	uc.logger.Infow("executing change password use case", "user_id", userID)

	if req.NewPassword != req.ConfirmPassword {
		return toAppError(user.ErrPasswordMismatch)
	}
	if err := user.ValidatePassword(req.NewPassword, uc.minPasswordLength); err != nil {
		return errors.NewValidationError(err.Error())
	}

	u, err := loadVerified(ctx, uc.userRepo, uc.hasher, userID, req.CurrentPassword)
	if err != nil {
		uc.logger.Warnw("password change rejected", "user_id", userID, "error", err)
		return toAppError(err)
	}

	hash, err := uc.hasher.Hash(req.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to change password")
	}
	if err := u.SetPasswordHash(hash); err != nil {
		return errors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist user updates", "user_id", userID, "error", err)
		return toAppError(err)
	}

	uc.logger.Infow("password changed successfully", "user_id", userID)
	return nil
}
