package usecases

import (
	"context"
	stderrors "errors"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type ChangeUsernameUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewChangeUsernameUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *ChangeUsernameUseCase {
	return &ChangeUsernameUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangeUsernameUseCase) Execute(ctx context.Context, userID uint, req dto.ChangeUsernameRequest) (*dto.UserResponse, error) {
	uc.logger.Infow("executing change username use case", "user_id", userID)

	u, err := loadVerified(ctx, uc.userRepo, uc.hasher, userID, req.Password)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := u.ChangeUsername(req.NewUsername); err != nil {
		if stderrors.Is(err, user.ErrSameUsername) {
			return nil, toAppError(err)
		}
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, u.Username())
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, toAppError(err)
	}
	if exists {
		return nil, toAppError(user.ErrUsernameTaken)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update username", "user_id", userID, "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("username changed successfully", "user_id", userID)

	resp := dto.ToUserResponse(u)
	return &resp, nil
}
