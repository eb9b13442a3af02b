package user

import (
	"context"

	"github.com/corpit/licensedesk/internal/shared/authorization"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}
