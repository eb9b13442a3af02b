package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpit/licensedesk/internal/application/customer/dto"
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

func validCustomerRequest() dto.CustomerRequest {
	return dto.CustomerRequest{
		Name:          "  Acme   Corp ",
		ContactPerson: "Dana Reyes",
		Email:         "Billing@Acme.example",
		Phone:         "+1-555-0100",
		Location:      "Austin",
	}
}

func existingCustomer(t *testing.T, id uint) *customer.Customer {
	t.Helper()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c, err := customer.ReconstructCustomer(id, customer.Details{
		Name:          "Acme Corp",
		ContactPerson: "Dana Reyes",
		Email:         "billing@acme.example",
		Phone:         "+1-555-0100",
		Location:      "Austin",
	}, now, now)
	require.NoError(t, err)
	return c
}

func TestCreateCustomerUseCase_Execute(t *testing.T) {
	repo := &mockCustomerRepository{
		CreateFunc: func(ctx context.Context, c *customer.Customer) error {
			return c.SetID(8)
		},
	}

	uc := NewCreateCustomerUseCase(repo, logger.NewNopLogger())
	resp, err := uc.Execute(context.Background(), validCustomerRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(8), resp.ID)
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "billing@acme.example", resp.Email)
}

func TestCreateCustomerUseCase_Errors(t *testing.T) {
	tests := []struct {
		name  string
		req   func() dto.CustomerRequest
		repo  *mockCustomerRepository
		check func(error) bool
	}{
		{
			name: "duplicate name",
			req:  validCustomerRequest,
			repo: &mockCustomerRepository{
				ExistsByNameFunc: func(ctx context.Context, name string, excludeID uint) (bool, error) {
					assert.Equal(t, "Acme Corp", name)
					return true, nil
				},
			},
			check: errors.IsConflictError,
		},
		{
			name: "unique index race",
			req:  validCustomerRequest,
			repo: &mockCustomerRepository{
				CreateFunc: func(ctx context.Context, c *customer.Customer) error {
					return assertErr("UNIQUE constraint failed: customers.name")
				},
			},
			check: errors.IsConflictError,
		},
		{
			name: "invalid email",
			req: func() dto.CustomerRequest {
				r := validCustomerRequest()
				r.Email = "not-an-email"
				return r
			},
			repo:  &mockCustomerRepository{},
			check: errors.IsValidationError,
		},
		{
			name: "store down",
			req:  validCustomerRequest,
			repo: &mockCustomerRepository{
				ExistsByNameFunc: func(ctx context.Context, name string, excludeID uint) (bool, error) {
					return false, assertErr("dial tcp 127.0.0.1:3306: connect: connection refused")
				},
			},
			check: errors.IsUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCustomerUseCase(tt.repo, logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), tt.req())
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}

func TestUpdateCustomerUseCase_Execute(t *testing.T) {
	var excluded uint
	repo := &mockCustomerRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
			return existingCustomer(t, id), nil
		},
		ExistsByNameFunc: func(ctx context.Context, name string, excludeID uint) (bool, error) {
			excluded = excludeID
			return false, nil
		},
	}

	req := validCustomerRequest()
	req.Location = "Denver"

	uc := NewUpdateCustomerUseCase(repo, logger.NewNopLogger())
	resp, err := uc.Execute(context.Background(), 3, req)

	require.NoError(t, err)
	assert.Equal(t, uint(3), excluded)
	assert.Equal(t, "Denver", resp.Location)
}

func TestUpdateCustomerUseCase_NotFound(t *testing.T) {
	uc := NewUpdateCustomerUseCase(&mockCustomerRepository{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), 3, validCustomerRequest())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteCustomerUseCase_Execute(t *testing.T) {
	tests := []struct {
		name        string
		found       bool
		licenses    int64
		wantDeleted bool
		check       func(error) bool
	}{
		{name: "no licenses", found: true, wantDeleted: true},
		{name: "restricted by licenses", found: true, licenses: 2, check: errors.IsConflictError},
		{name: "missing", found: false, check: errors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			repo := &mockCustomerRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
					if !tt.found {
						return nil, nil
					}
					return existingCustomer(t, id), nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			}

			uc := NewDeleteCustomerUseCase(repo, &mockLicenseCounter{count: tt.licenses}, logger.NewNopLogger())
			err := uc.Execute(context.Background(), 5)

			assert.Equal(t, tt.wantDeleted, deleted)
			if tt.check == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}

func TestDeleteCustomerUseCase_ConflictNamesCount(t *testing.T) {
	repo := &mockCustomerRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
			return existingCustomer(t, id), nil
		},
	}
	uc := NewDeleteCustomerUseCase(repo, &mockLicenseCounter{count: 3}, logger.NewNopLogger())

	err := uc.Execute(context.Background(), 5)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details, "3 license(s)")
}

func TestListCustomersUseCase_Execute(t *testing.T) {
	var got customer.ListFilter
	repo := &mockCustomerRepository{
		ListFunc: func(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
			got = filter
			return []*customer.Customer{existingCustomer(t, 1), existingCustomer(t, 2)}, 2, nil
		},
	}

	uc := NewListCustomersUseCase(repo, logger.NewNopLogger())
	resp, err := uc.Execute(context.Background(), dto.ListCustomersRequest{Search: "acme", Page: 0, PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, "acme", got.Search)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 100, got.PageSize)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(2), resp.Total)
}

func TestGetCustomerUseCase_NotFound(t *testing.T) {
	uc := NewGetCustomerUseCase(&mockCustomerRepository{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), 9)
	assert.True(t, errors.IsNotFoundError(err))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
