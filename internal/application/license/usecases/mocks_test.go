package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/domain/product"
)

type mockLicenseRepository struct {
	CreateFunc                  func(ctx context.Context, l *license.License) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*license.License, error)
	GetByCustomerAndProductFunc func(ctx context.Context, customerID, productID uint) (*license.License, error)
	UpdateFunc                  func(ctx context.Context, l *license.License) error
	DeleteFunc                  func(ctx context.Context, id uint) error
	ListFunc                    func(ctx context.Context, filter license.ListFilter) ([]*license.License, int64, error)
	FindExpiringOnOrBeforeFunc  func(ctx context.Context, date time.Time) ([]*license.License, error)
	CountByExpiryFunc           func(ctx context.Context, from, to *time.Time) (int64, error)
	CountByCustomerIDFunc       func(ctx context.Context, customerID uint) (int64, error)
	CountByProductIDFunc        func(ctx context.Context, productID uint) (int64, error)

	lastID uint
}

func (m *mockLicenseRepository) Create(ctx context.Context, l *license.License) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	m.lastID++
	return l.SetID(m.lastID)
}

func (m *mockLicenseRepository) GetByID(ctx context.Context, id uint) (*license.License, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockLicenseRepository) GetByCustomerAndProduct(ctx context.Context, customerID, productID uint) (*license.License, error) {
	if m.GetByCustomerAndProductFunc != nil {
		return m.GetByCustomerAndProductFunc(ctx, customerID, productID)
	}
	return nil, nil
}

func (m *mockLicenseRepository) Update(ctx context.Context, l *license.License) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockLicenseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockLicenseRepository) List(ctx context.Context, filter license.ListFilter) ([]*license.License, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockLicenseRepository) FindExpiringOnOrBefore(ctx context.Context, date time.Time) ([]*license.License, error) {
	if m.FindExpiringOnOrBeforeFunc != nil {
		return m.FindExpiringOnOrBeforeFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockLicenseRepository) CountByExpiry(ctx context.Context, from, to *time.Time) (int64, error) {
	if m.CountByExpiryFunc != nil {
		return m.CountByExpiryFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockLicenseRepository) CountByCustomerID(ctx context.Context, customerID uint) (int64, error) {
	if m.CountByCustomerIDFunc != nil {
		return m.CountByCustomerIDFunc(ctx, customerID)
	}
	return 0, nil
}

func (m *mockLicenseRepository) CountByProductID(ctx context.Context, productID uint) (int64, error) {
	if m.CountByProductIDFunc != nil {
		return m.CountByProductIDFunc(ctx, productID)
	}
	return 0, nil
}

type mockRenewalRepository struct {
	RecordFunc            func(ctx context.Context, r *license.Renewal) error
	HistoryForFunc        func(ctx context.Context, licenseID uint) ([]*license.Renewal, error)
	DeleteByLicenseIDFunc func(ctx context.Context, licenseID uint) (int64, error)
}

func (m *mockRenewalRepository) Record(ctx context.Context, r *license.Renewal) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, r)
	}
	return nil
}

func (m *mockRenewalRepository) HistoryFor(ctx context.Context, licenseID uint) ([]*license.Renewal, error) {
	if m.HistoryForFunc != nil {
		return m.HistoryForFunc(ctx, licenseID)
	}
	return nil, nil
}

func (m *mockRenewalRepository) DeleteByLicenseID(ctx context.Context, licenseID uint) (int64, error) {
	if m.DeleteByLicenseIDFunc != nil {
		return m.DeleteByLicenseIDFunc(ctx, licenseID)
	}
	return 0, nil
}

type mockEventRepository struct {
	AppendFunc           func(ctx context.Context, e *license.Event) error
	ListByLicenseIDFunc  func(ctx context.Context, licenseID uint) ([]*license.Event, error)
	CountByTypeSinceFunc func(ctx context.Context, eventType string, since time.Time) (int64, error)

	appended []*license.Event
}

func (m *mockEventRepository) Append(ctx context.Context, e *license.Event) error {
	m.appended = append(m.appended, e)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) ListByLicenseID(ctx context.Context, licenseID uint) ([]*license.Event, error) {
	if m.ListByLicenseIDFunc != nil {
		return m.ListByLicenseIDFunc(ctx, licenseID)
	}
	return nil, nil
}

func (m *mockEventRepository) CountByTypeSince(ctx context.Context, eventType string, since time.Time) (int64, error) {
	if m.CountByTypeSinceFunc != nil {
		return m.CountByTypeSinceFunc(ctx, eventType, since)
	}
	return 0, nil
}

type mockCustomerRepository struct {
	customers map[uint]*customer.Customer
	CountFunc func(ctx context.Context) (int64, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return m.customers[id], nil
}

func (m *mockCustomerRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*customer.Customer, error) {
	out := make(map[uint]*customer.Customer)
	for _, id := range ids {
		if c, ok := m.customers[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}

func (m *mockCustomerRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return false, nil
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return int64(len(m.customers)), nil
}

type mockProductRepository struct {
	products map[uint]*product.Product
}

func (m *mockProductRepository) Create(ctx context.Context, p *product.Product) error { return nil }

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*product.Product, error) {
	out := make(map[uint]*product.Product)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error { return nil }
func (m *mockProductRepository) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return false, nil
}

// passthroughTx runs fn directly; rollback is covered by repository integration tests.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

var testToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		ExpiringSoonDays: license.DefaultExpiringSoonDays,
		Today:            func() time.Time { return testToday },
	}
}

func newTestCustomer(t *testing.T, id uint) *customer.Customer {
	t.Helper()
	c, err := customer.ReconstructCustomer(id, customer.Details{
		Name:          "Acme Corp",
		ContactPerson: "Dana Reyes",
		Email:         "billing@acme.example",
		Phone:         "+1-555-0100",
		Location:      "Austin",
	}, testToday, testToday)
	require.NoError(t, err)
	return c
}

func newTestProduct(t *testing.T, id uint, defaultValidity int) *product.Product {
	t.Helper()
	p, err := product.ReconstructProduct(id, "Office Suite", product.TypeSoftware, product.UnitUser, defaultValidity, testToday, testToday)
	require.NoError(t, err)
	return p
}

func newTestLicense(t *testing.T, id uint, issue time.Time, months int, qty int, amount string) *license.License {
	t.Helper()
	expiry, err := license.ComputeExpiry(issue, months)
	require.NoError(t, err)
	l, err := license.ReconstructLicense(
		id, 1, 1, qty, issue, nil, months, expiry,
		vo.Amounts{"USD": decimal.RequireFromString(amount)},
		"", 1, testToday, testToday,
	)
	require.NoError(t, err)
	return l
}

func newRefs(t *testing.T) (*mockCustomerRepository, *mockProductRepository) {
	t.Helper()
	return &mockCustomerRepository{customers: map[uint]*customer.Customer{1: newTestCustomer(t, 1)}},
		&mockProductRepository{products: map[uint]*product.Product{1: newTestProduct(t, 1, 12)}}
}
