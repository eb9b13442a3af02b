package usecases

import (
	"context"
	"time"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/shared/authorization"
)

// TokenIssuer signs access tokens carrying the user's role.
type TokenIssuer interface {
	Generate(userID uint, username string, role authorization.UserRole) (token string, expiresIn int64, err error)
}

// LoginLimiter throttles password attempts per key. A nil limiter disables throttling.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
	Reset(ctx context.Context, key string) error
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
}

type LoginWithPasswordExecutor interface {
	Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.LoginResponse, error)
}

type ChangeUsernameExecutor interface {
	Execute(ctx context.Context, userID uint, req dto.ChangeUsernameRequest) (*dto.UserResponse, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error
}

type DeleteAccountExecutor interface {
	Execute(ctx context.Context, userID uint, req dto.DeleteAccountRequest) error
}
