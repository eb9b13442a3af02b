package usecases

import (
	"context"
	"sync"

	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/shared/authorization"
)

type mockRequestRepository struct {
	CreateFunc       func(ctx context.Context, r *request.Request) error
	GetByIDFunc      func(ctx context.Context, id uint) (*request.Request, error)
	UpdateStatusFunc func(ctx context.Context, r *request.Request, from request.Status) error
	ListFunc         func(ctx context.Context, filter request.ListFilter) ([]*request.Request, int64, error)
}

func (m *mockRequestRepository) Create(ctx context.Context, r *request.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) UpdateStatus(ctx context.Context, r *request.Request, from request.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, r, from)
	}
	return nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.ListFilter) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// mockUserRepository serves a fixed set of users; writes are not used here.
type mockUserRepository struct {
	users []*user.User
	err   error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*user.User
	for _, u := range m.users {
		if u.Role() == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type sentMail struct {
	to, subject, body string
}

type mockDispatcher struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *mockDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return m.err
}

func (m *mockDispatcher) Sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}
