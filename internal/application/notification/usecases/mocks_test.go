package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/product"
)

type mockLicenseRepository struct {
	license.Repository

	licenses                   map[uint]*license.License
	FindExpiringOnOrBeforeFunc func(ctx context.Context, date time.Time) ([]*license.License, error)
}

func (m *mockLicenseRepository) GetByID(ctx context.Context, id uint) (*license.License, error) {
	return m.licenses[id], nil
}

func (m *mockLicenseRepository) FindExpiringOnOrBefore(ctx context.Context, date time.Time) ([]*license.License, error) {
	if m.FindExpiringOnOrBeforeFunc != nil {
		return m.FindExpiringOnOrBeforeFunc(ctx, date)
	}
	return nil, nil
}

type mockCustomerRepository struct {
	customer.Repository

	customers map[uint]*customer.Customer
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

type mockProductRepository struct {
	product.Repository

	products map[uint]*product.Product
}

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

type mockNotificationRepository struct {
	RecordFunc    func(ctx context.Context, n *notification.RenewalNotification) error
	SentSinceFunc func(ctx context.Context, licenseID uint, notificationType notification.Type, since time.Time) (bool, error)

	recorded []*notification.RenewalNotification
}

func (m *mockNotificationRepository) Record(ctx context.Context, n *notification.RenewalNotification) error {
	m.recorded = append(m.recorded, n)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) ListByLicenseID(ctx context.Context, licenseID uint) ([]*notification.RenewalNotification, error) {
	var out []*notification.RenewalNotification
	for _, n := range m.recorded {
		if n.LicenseID() == licenseID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepository) SentSince(ctx context.Context, licenseID uint, notificationType notification.Type, since time.Time) (bool, error) {
	if m.SentSinceFunc != nil {
		return m.SentSinceFunc(ctx, licenseID, notificationType, since)
	}
	return false, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mockDispatcher struct {
	mu       sync.Mutex
	sent     []sentMail
	SendFunc func(ctx context.Context, to, subject, htmlBody string) error
}

func (m *mockDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, to, subject, htmlBody); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *mockDispatcher) Sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

var testToday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		CompanyName:      "Corporate IT Solutions",
		ExpiringSoonDays: license.DefaultExpiringSoonDays,
		SendTimeout:      time.Second,
		Today:            func() time.Time { return testToday },
	}
}

func newTestLicense(t *testing.T, id uint, issue time.Time) *license.License {
	t.Helper()
	expiry, err := license.ComputeExpiry(issue, 12)
	require.NoError(t, err)
	l, err := license.ReconstructLicense(
		id, 1, 1, 5, issue, nil, 12, expiry,
		vo.Amounts{"USD": decimal.NewFromInt(1000)},
		"", 1, testToday, testToday,
	)
	require.NoError(t, err)
	return l
}

// fixture holds one customer and product plus three licenses:
// 1 expired 22 days ago, 2 expiring in 19 days, 3 active.
type fixture struct {
	licenses      *mockLicenseRepository
	customers     *mockCustomerRepository
	products      *mockProductRepository
	notifications *mockNotificationRepository
	dispatcher    *mockDispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	c, err := customer.ReconstructCustomer(1, customer.Details{
		Name:          "Acme Corp",
		ContactPerson: "Dana Reyes",
		Email:         "billing@acme.example",
		Phone:         "+1-555-0100",
		Location:      "Austin",
	}, testToday, testToday)
	require.NoError(t, err)

	p, err := product.ReconstructProduct(1, "Office Suite", product.TypeSoftware, product.UnitUser, 12, testToday, testToday)
	require.NoError(t, err)

	licenses := map[uint]*license.License{
		1: newTestLicense(t, 1, time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)),
		2: newTestLicense(t, 2, time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC)),
		3: newTestLicense(t, 3, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
	}

	return &fixture{
		licenses: &mockLicenseRepository{
			licenses: licenses,
			FindExpiringOnOrBeforeFunc: func(ctx context.Context, date time.Time) ([]*license.License, error) {
				var out []*license.License
				for _, id := range []uint{2, 1, 3} {
					if !licenses[id].ExpiryDate().After(date) {
						out = append(out, licenses[id])
					}
				}
				return out, nil
			},
		},
		customers:     &mockCustomerRepository{customers: map[uint]*customer.Customer{1: c}},
		products:      &mockProductRepository{products: map[uint]*product.Product{1: p}},
		notifications: &mockNotificationRepository{},
		dispatcher:    &mockDispatcher{},
	}
}
