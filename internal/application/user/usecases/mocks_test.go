package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/authorization"
)

// mockUserRepository keeps users in memory keyed by ID. Reads and writes copy
// the user so unsaved changes never leak into the store.
type mockUserRepository struct {
	users  map[uint]*user.User
	nextID uint

	CountFunc  func(ctx context.Context) (int64, error)
	UpdateFunc func(ctx context.Context, u *user.User) error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*user.User), nextID: 1}
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[m.nextID] = cloneUser(u)
	m.nextID++
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return cloneUser(m.users[id]), nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username() == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	m.users[u.ID()] = cloneUser(u)
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := m.GetByUsername(ctx, username)
	return u != nil, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.users {
		if u.Role() == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return int64(len(m.users)), nil
}

func cloneUser(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// plainHasher prefixes passwords so tests can read the stored hash.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type mockTokenIssuer struct{}

func (mockTokenIssuer) Generate(userID uint, username string, role authorization.UserRole) (string, int64, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), 3600, nil
}

type mockLoginLimiter struct {
	allowed bool
	err     error
	resets  int
}

func (m *mockLoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	return m.allowed, 30 * time.Second, m.err
}

func (m *mockLoginLimiter) Reset(ctx context.Context, key string) error {
	m.resets++
	return nil
}
