package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	sharedvo "github.com/corpit/licensedesk/internal/domain/shared/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/authorization"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// NormalizeUsername trims and validates a login name.
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return "", fmt.Errorf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return "", fmt.Errorf("username may only contain letters, digits, '.', '_' and '-'")
	}
	return username, nil
}

// User is an account that can sign in to the desk.
type User struct {
	id           uint
	username     string
	passwordHash string
	email        string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash string, role authorization.UserRole) (*User, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	mail, err := sharedvo.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		username:     name,
		passwordHash: passwordHash,
		email:        mail,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, passwordHash, email string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		role:         authorization.ParseUserRole(string(role)),
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Email() string                { return u.email }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsAdmin() bool                { return u.role.IsAdmin() }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// SetID sets the user ID after persistence
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangeUsername renames the account. The new name must differ from the current one.
func (u *User) ChangeUsername(newUsername string) error {
	name, err := NormalizeUsername(newUsername)
	if err != nil {
		return err
	}
	if name == u.username {
		return ErrSameUsername
	}
	u.username = name
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}
