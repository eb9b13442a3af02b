package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/domain/customer"
)

type mockCustomerRepository struct {
	CreateFunc       func(ctx context.Context, c *customer.Customer) error
	GetByIDFunc      func(ctx context.Context, id uint) (*customer.Customer, error)
	UpdateFunc       func(ctx context.Context, c *customer.Customer) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListFunc         func(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error)
	ExistsByNameFunc func(ctx context.Context, name string, excludeID uint) (bool, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*customer.Customer, error) {
	return map[uint]*customer.Customer{}, nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCustomerRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name, excludeID)
	}
	return false, nil
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockLicenseCounter struct {
	count int64
	err   error
}

func (m *mockLicenseCounter) CountByCustomerID(ctx context.Context, customerID uint) (int64, error) {
	return m.count, m.err
}
