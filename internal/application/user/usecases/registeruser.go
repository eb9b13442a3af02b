package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/authorization"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type RegisterUserUseCase struct {
	userRepo          user.Repository
	hasher            user.PasswordHasher
	minPasswordLength int
	logger            logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, minPasswordLength int, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:          userRepo,
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

// Execute creates an account. The first account becomes the administrator.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	uc.logger.Infow("executing register user use case", "username", req.Username)

	if req.Password != req.ConfirmPassword {
		return nil, toAppError(user.ErrPasswordMismatch)
	}
	if err := user.ValidatePassword(req.Password, uc.minPasswordLength); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	username, err := user.NormalizeUsername(req.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, toAppError(err)
	}
	if exists {
		return nil, toAppError(user.ErrUsernameTaken)
	}

	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, toAppError(err)
	}
	role := authorization.RoleUser
	if count == 0 {
		role = authorization.RoleAdmin
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	u, err := user.NewUser(username, req.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("user registered successfully", "user_id", u.ID(), "role", u.Role())

	resp := dto.ToUserResponse(u)
	return &resp, nil
}
