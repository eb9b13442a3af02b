package usecases

import (
	"context"

	"github.com/corpit/licensedesk/internal/domain/product"
)

type mockProductRepository struct {
	CreateFunc       func(ctx context.Context, p *product.Product) error
	GetByIDFunc      func(ctx context.Context, id uint) (*product.Product, error)
	UpdateFunc       func(ctx context.Context, p *product.Product) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListFunc         func(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error)
	ExistsByNameFunc func(ctx context.Context, name string, excludeID uint) (bool, error)
}

func (m *mockProductRepository) Create(ctx context.Context, p *product.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*product.Product, error) {
	return map[uint]*product.Product{}, nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockProductRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name, excludeID)
	}
	return false, nil
}

type mockLicenseCounter struct {
	count int64
	err   error
}

func (m *mockLicenseCounter) CountByProductID(ctx context.Context, productID uint) (int64, error) {
	return m.count, m.err
}
