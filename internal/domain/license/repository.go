package license

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, license *License) error
	GetByID(ctx context.Context, id uint) (*License, error)
	GetByCustomerAndProduct(ctx context.Context, customerID, productID uint) (*License, error)
	// Update fails with ErrConcurrentModification when the stored version moved on.
	Update(ctx context.Context, license *License) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, filter ListFilter) ([]*License, int64, error)
	// FindExpiringOnOrBefore returns licenses whose expiry is on or before date, earliest first.
	FindExpiringOnOrBefore(ctx context.Context, date time.Time) ([]*License, error)
	CountByExpiry(ctx context.Context, from, to *time.Time) (int64, error)
	CountByCustomerID(ctx context.Context, customerID uint) (int64, error)
	CountByProductID(ctx context.Context, productID uint) (int64, error)
}

// ListFilter selects licenses. Expiry bounds are inclusive; nil means open.
type ListFilter struct {
	CustomerID  *uint
	ProductID   *uint
	ProductType *string
	ExpiryFrom  *time.Time
	ExpiryTo    *time.Time
	Page        int
	PageSize    int
	SortBy      string
	SortDesc    bool
}

// RenewalRepository is the append-only renewal ledger.
type RenewalRepository interface {
	Record(ctx context.Context, renewal *Renewal) error
	// HistoryFor returns entries newest due date first.
	HistoryFor(ctx context.Context, licenseID uint) ([]*Renewal, error)
	DeleteByLicenseID(ctx context.Context, licenseID uint) (int64, error)
}

type EventRepository interface {
	Append(ctx context.Context, event *Event) error
	ListByLicenseID(ctx context.Context, licenseID uint) ([]*Event, error)
	CountByTypeSince(ctx context.Context, eventType string, since time.Time) (int64, error)
}
