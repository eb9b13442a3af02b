package handlers

import (
	"context"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler and SettingsHandler

type registerUseCase interface {
	Execute(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*dto.LoginResponse, error)
}

type changeUsernameUseCase interface {
	Execute(ctx context.Context, userID uint, req dto.ChangeUsernameRequest) (*dto.UserResponse, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error
}

type deleteAccountUseCase interface {
	Execute(ctx context.Context, userID uint, req dto.DeleteAccountRequest) error
}
