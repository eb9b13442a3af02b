package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/infrastructure/migration"
	"github.com/corpit/licensedesk/internal/shared/authorization"
	"github.com/corpit/licensedesk/internal/shared/db"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s, err := migration.NewGooseStrategy("sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.Migrate(gdb))
	return gdb
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func usd(t *testing.T, amount string) vo.Money {
	t.Helper()
	m, err := vo.NewMoney(decimal.RequireFromString(amount), "USD")
	require.NoError(t, err)
	return m
}

type fixture struct {
	customers customer.Repository
	products  product.Repository
	licenses  license.Repository
	renewals  license.RenewalRepository
	events    license.EventRepository
}

func newFixture(t *testing.T) (*gorm.DB, fixture) {
	gdb := setupDB(t)
	log := logger.NewNopLogger()
	return gdb, fixture{
		customers: NewCustomerRepository(gdb, log),
		products:  NewProductRepository(gdb, log),
		licenses:  NewLicenseRepository(gdb, log),
		renewals:  NewRenewalRepository(gdb),
		events:    NewLicenseEventRepository(gdb),
	}
}

func (f fixture) customer(t *testing.T, name string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(customer.Details{
		Name:          name,
		ContactPerson: "Jane Roe",
		Email:         "billing@" + name + ".example",
		Phone:         "+1 555 0100",
		Location:      "Springfield",
	})
	require.NoError(t, err)
	require.NoError(t, f.customers.Create(context.Background(), c))
	return c
}

func (f fixture) product(t *testing.T, name, typ string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(product.Details{
		Name:                  name,
		Type:                  typ,
		LicenseUnit:           "User",
		DefaultValidityMonths: 12,
	})
	require.NoError(t, err)
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f fixture) license(t *testing.T, c *customer.Customer, p *product.Product, issued time.Time, months int) *license.License {
	t.Helper()
	l, err := license.NewLicense(c.ID(), p.ID(), 10, issued, nil, months, usd(t, "1000.50"), "")
	require.NoError(t, err)
	require.NoError(t, f.licenses.Create(context.Background(), l))
	return l
}

func TestCustomerRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	_, f := newFixture(t)

	c := f.customer(t, "acme")
	assert.NotZero(t, c.ID())

	got, err := f.customers.GetByID(ctx, c.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acme", got.Name())

	missing, err := f.customers.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	dup, err := customer.NewCustomer(customer.Details{
		Name: "acme", ContactPerson: "x", Email: "x@acme.example", Phone: "1", Location: "y",
	})
	require.NoError(t, err)
	assert.ErrorIs(t, f.customers.Create(ctx, dup), customer.ErrCustomerNameExists)

	exists, err := f.customers.ExistsByName(ctx, "acme", c.ID())
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = f.customers.ExistsByName(ctx, "acme", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	f.customer(t, "globex")
	items, total, err := f.customers.List(ctx, customer.ListFilter{Search: "glob", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "globex", items[0].Name())

	require.NoError(t, f.customers.Delete(ctx, c.ID()))
	assert.ErrorIs(t, f.customers.Delete(ctx, c.ID()), customer.ErrCustomerNotFound)
}

func TestCustomerRepository_DeleteRestrictedByLicense(t *testing.T) {
	ctx := context.Background()
	_, f := newFixture(t)

	c := f.customer(t, "acme")
	p := f.product(t, "Office Suite", "Software")
	f.license(t, c, p, day(2024, 1, 15), 12)

	err := f.customers.Delete(ctx, c.ID())
	assert.True(t, errors.Is(err, customer.ErrCustomerInUse), "got %v", err)

	err = f.products.Delete(ctx, p.ID())
	assert.True(t, errors.Is(err, product.ErrProductInUse), "got %v", err)
}

func TestLicenseRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	_, f := newFixture(t)

	c := f.customer(t, "acme")
	p := f.product(t, "Office Suite", "Software")
	l := f.license(t, c, p, day(2024, 1, 31), 1)

	got, err := f.licenses.GetByID(ctx, l.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, l.ExpiryDate(), got.ExpiryDate())
	assert.Equal(t, day(2024, 1, 31), got.IssueDate())
	assert.Equal(t, 1, got.Version())
	amount, ok := got.Amounts().Get("USD")
	require.True(t, ok)
	assert.Equal(t, "1000.50", amount.StringFixed(2))

	byPair, err := f.licenses.GetByCustomerAndProduct(ctx, c.ID(), p.ID())
	require.NoError(t, err)
	require.NotNil(t, byPair)
	assert.Equal(t, l.ID(), byPair.ID())

	dup, err := license.NewLicense(c.ID(), p.ID(), 1, day(2024, 2, 1), nil, 12, usd(t, "1"), "")
	require.NoError(t, err)
	err = f.licenses.Create(ctx, dup)
	assert.ErrorIs(t, err, license.ErrDuplicateLicense)
}

func TestLicenseRepository_UpdateChecksVersion(t *testing.T) {
	ctx := context.Background()
	_, f := newFixture(t)

	c := f.customer(t, "acme")
	p := f.product(t, "Office Suite", "Software")
	l := f.license(t, c, p, day(2024, 1, 15), 12)

	first, err := f.licenses.GetByID(ctx, l.ID())
	require.NoError(t, err)
	second, err := f.licenses.GetByID(ctx, l.ID())
	require.NoError(t, err)

	require.NoError(t, first.Upgrade(5, decimal.RequireFromString("100"), "USD", "", day(2024, 3, 1)))
	require.NoError(t, f.licenses.Update(ctx, first))

	require.NoError(t, second.Upgrade(1, decimal.Zero, "USD", "", day(2024, 3, 1)))
	assert.ErrorIs(t, f.licenses.Update(ctx, second), license.ErrConcurrentModification)

	stored, err := f.licenses.GetByID(ctx, l.ID())
	require.NoError(t, err)
	assert.Equal(t, 15, stored.Quantity())
	assert.Equal(t, 2, stored.Version())
}

func TestLicenseRepository_ListAndCounts(t *testing.T) {
	ctx := context.Background()
	_, f := newFixture(t)

	acme := f.customer(t, "acme")
	globex := f.customer(t, "globex")
	office := f.product(t, "Office Suite", "Software")
	server := f.product(t, "Rack Server", "Hardware")

	early := f.license(t, acme, office, day(2023, 5, 10), 12)
	f.license(t, acme, server, day(2024, 1, 15), 12)
	late := f.license(t, globex, office, day(2024, 6, 1), 24)

	all, total, err := f.licenses.List(ctx, license.ListFilter{Page: 1, PageSize: 10, SortBy: "expiry_date"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 3)
	assert.Equal(t, early.ID(), all[0].ID())
	assert.Equal(t, late.ID(), all[2].ID())

	hw := "Hardware"
	hardware, total, err := f.licenses.List(ctx, license.ListFilter{ProductType: &hw, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, hardware, 1)
	assert.Equal(t, server.ID(), hardware[0].ProductID())

	customerID := acme.ID()
	mine, total, err := f.licenses.List(ctx, license.ListFilter{CustomerID: &customerID, SortDesc: true, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, server.ID(), mine[0].ProductID())

	cutoff := day(2025, 1, 31)
	expiring, err := f.licenses.FindExpiringOnOrBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	assert.True(t, !expiring[0].ExpiryDate().After(expiring[1].ExpiryDate()))

	from := day(2024, 6, 1)
	n, err := f.licenses.CountByExpiry(ctx, &from, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = f.licenses.CountByCustomerID(ctx, acme.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = f.licenses.CountByProductID(ctx, office.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestLicenseRepository_DeleteCascadesRenewals(t *testing.T) {
	ctx := context.Background()
	_, f := newFixture(t)

	c := f.customer(t, "acme")
	p := f.product(t, "Office Suite", "Software")
	l := f.license(t, c, p, day(2023, 6, 1), 12)

	older, err := l.Renew(license.RenewalTerms{RenewedOn: day(2024, 6, 1), Quantity: 10, ValidityMonths: 12, Amount: usd(t, "1100")})
	require.NoError(t, err)
	require.NoError(t, f.renewals.Record(ctx, older))
	newer, err := l.Renew(license.RenewalTerms{RenewedOn: day(2025, 6, 1), Quantity: 12, ValidityMonths: 12, Amount: usd(t, "1200")})
	require.NoError(t, err)
	require.NoError(t, f.renewals.Record(ctx, newer))

	history, err := f.renewals.HistoryFor(ctx, l.ID())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID(), history[0].ID())
	assert.Equal(t, newer.DueDate(), history[0].DueDate())

	event, err := license.NewEvent(l.ID(), license.EventTypeRenewed, "admin", nil, l.Snapshot())
	require.NoError(t, err)
	require.NoError(t, f.events.Append(ctx, event))

	require.NoError(t, f.licenses.Delete(ctx, l.ID()))
	assert.ErrorIs(t, f.licenses.Delete(ctx, l.ID()), license.ErrLicenseNotFound)

	history, err = f.renewals.HistoryFor(ctx, l.ID())
	require.NoError(t, err)
	assert.Empty(t, history)

	events, err := f.events.ListByLicenseID(ctx, l.ID())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].Before())
	require.NotNil(t, events[0].After())
	assert.Equal(t, 12, events[0].After().Quantity)

	n, err := f.events.CountByTypeSince(ctx, license.EventTypeRenewed, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRenewalAndLicense_CommitTogether(t *testing.T) {
	ctx := context.Background()
	gdb, f := newFixture(t)
	tm := db.NewTransactionManager(gdb)

	c := f.customer(t, "acme")
	p := f.product(t, "Office Suite", "Software")
	l := f.license(t, c, p, day(2023, 6, 1), 12)

	boom := errors.New("boom")
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		r, err := l.Renew(license.RenewalTerms{RenewedOn: day(2024, 6, 1), Quantity: 10, ValidityMonths: 12, Amount: usd(t, "1")})
		if err != nil {
			return err
		}
		if err := f.licenses.Update(txCtx, l); err != nil {
			return err
		}
		if err := f.renewals.Record(txCtx, r); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := f.licenses.GetByID(ctx, l.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Version())
	history, err := f.renewals.HistoryFor(ctx, l.ID())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestNotificationRepository_SentSince(t *testing.T) {
	ctx := context.Background()
	gdb := setupDB(t)
	repo := NewNotificationRepository(gdb)

	failed, err := notification.NewRenewalNotification(1, 2, 3, notification.TypeExpiring, "a@b.example", errors.New("smtp down"))
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, failed))

	since := time.Now().UTC().Add(-time.Minute)
	sent, err := repo.SentSince(ctx, 1, notification.TypeExpiring, since)
	require.NoError(t, err)
	assert.False(t, sent)

	ok, err := notification.NewRenewalNotification(1, 2, 3, notification.TypeExpiring, "a@b.example", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, ok))

	sent, err = repo.SentSince(ctx, 1, notification.TypeExpiring, since)
	require.NoError(t, err)
	assert.True(t, sent)

	sent, err = repo.SentSince(ctx, 1, notification.TypeExpired, since)
	require.NoError(t, err)
	assert.False(t, sent)

	list, err := repo.ListByLicenseID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ok.ID(), list[0].ID())
	assert.Equal(t, "smtp down", list[1].ErrorMessage())
}

func TestNotificationRepository_SentSinceCountsUnconfirmed(t *testing.T) {
	ctx := context.Background()
	gdb := setupDB(t)
	repo := NewNotificationRepository(gdb)

	timedOut, err := notification.NewRenewalNotification(4, 2, 3, notification.TypeExpired, "a@b.example",
		fmt.Errorf("failed: %w", notification.ErrDeliveryUnconfirmed))
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, timedOut))

	sent, err := repo.SentSince(ctx, 4, notification.TypeExpired, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, sent)

	list, err := repo.ListByLicenseID(ctx, 4)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Sent())
	assert.True(t, list[0].Unconfirmed())
}

func TestRequestRepository_StatusFlow(t *testing.T) {
	ctx := context.Background()
	gdb := setupDB(t)
	repo := NewRequestRepository(gdb)

	newReq := func(topic string) *request.Request {
		r, err := request.NewRequest(request.Submission{
			Name:        "Jane",
			Date:        day(2024, 6, 1),
			Topic:       topic,
			Description: "Need more seats",
			Currency:    "USD",
			Amount:      decimal.RequireFromString("250"),
			RequestedBy: 7,
		})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, r))
		return r
	}

	a := newReq("Seats")
	newReq("Laptop")

	stale, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)

	require.NoError(t, a.Process(request.StatusApproved, "admin", time.Now().UTC()))
	require.NoError(t, repo.UpdateStatus(ctx, a, request.StatusPending))

	require.NoError(t, stale.Process(request.StatusRejected, "other", time.Now().UTC()))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, stale, request.StatusPending), request.ErrRequestNotFound)

	got, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, got.Status())
	assert.Equal(t, "admin", got.ProcessedBy())
	require.NotNil(t, got.ProcessedAt())
	assert.Equal(t, "250.00", got.Amount().StringFixed(2))

	pending, total, err := repo.List(ctx, request.ListFilter{
		Statuses: []request.Status{request.StatusPending, request.StatusInProgress},
		Page:     1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Laptop", pending[0].Topic())

	processed, total, err := repo.List(ctx, request.ListFilter{
		Statuses:  []request.Status{request.StatusApproved, request.StatusCompleted, request.StatusRejected},
		Processed: true,
		Page:      1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, a.ID(), processed[0].ID())

	requester := uint(7)
	mine, total, err := repo.List(ctx, request.ListFilter{RequestedBy: &requester, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 2)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	gdb := setupDB(t)
	repo := NewUserRepository(gdb, logger.NewNopLogger())

	admin, err := user.NewUser("root", "root@corp.example", "hash", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, admin))

	plain, err := user.NewUser("jane", "jane@corp.example", "hash", authorization.RoleUser)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plain))

	dup, err := user.NewUser("jane", "other@corp.example", "hash", authorization.RoleUser)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), user.ErrUsernameTaken)

	got, err := repo.GetByUsername(ctx, "jane")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, plain.ID(), got.ID())

	none, err := repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, none)

	exists, err := repo.ExistsByUsername(ctx, "root")
	require.NoError(t, err)
	assert.True(t, exists)

	admins, err := repo.ListByRole(ctx, authorization.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "root", admins[0].Username())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, repo.Delete(ctx, plain.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, plain.ID()), user.ErrUserNotFound)
}
