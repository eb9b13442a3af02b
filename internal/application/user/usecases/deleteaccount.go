package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type DeleteAccountUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewDeleteAccountUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute deletes the caller's own account after re-checking the password.
// Requests the user submitted stay on record.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, userID uint, req dto.DeleteAccountRequest) error {
	uc.logger.Infow("executing delete account use case", "user_id", userID)

	u, err := loadVerified(ctx, uc.userRepo, uc.hasher, userID, req.Password)
	if err != nil {
		return toAppError(err)
	}

	if err := uc.userRepo.Delete(ctx, u.ID()); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", userID, "error", err)
		return toAppError(err)
	}

	uc.logger.Infow("account deleted", "user_id", userID, "username", u.Username())
	return nil
}
