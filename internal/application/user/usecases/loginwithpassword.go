package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	limiter  LoginLimiter
	logger   logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	limiter LoginLimiter,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		logger:   logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(cmd.Username)
	key := strings.ToLower(username) + "|" + cmd.IPAddress

	if uc.limiter != nil {
		allowed, retryAfter, err := uc.limiter.Allow(ctx, key)
		if err != nil {
			// Fail open when the limiter store is down.
			uc.logger.Warnw("login limiter unavailable", "error", err)
		} else if !allowed {
			uc.logger.Warnw("login attempts throttled", "username", username, "ip", cmd.IPAddress)
			return nil, errors.NewRateLimitedError("too many login attempts",
				fmt.Sprintf("retry after %d seconds", int(retryAfter.Seconds())+1))
		}
	}

	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, toAppError(err)
	}
	// Same error for unknown users and bad passwords.
	if u == nil {
		return nil, toAppError(user.ErrInvalidCredentials)
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID(), "ip", cmd.IPAddress)
		return nil, toAppError(user.ErrInvalidCredentials)
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), u.Username(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to sign in")
	}

	if uc.limiter != nil {
		if err := uc.limiter.Reset(ctx, key); err != nil {
			uc.logger.Warnw("failed to reset login limiter", "error", err)
		}
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID())

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        dto.ToUserResponse(u),
	}, nil
}
