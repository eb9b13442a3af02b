package notification

import (
	"context"
	"time"
)

type Repository interface {
	Record(ctx context.Context, n *RenewalNotification) error
	ListByLicenseID(ctx context.Context, licenseID uint) ([]*RenewalNotification, error)
	// SentSince reports whether a reminder of this type went out, or may have
	// gone out, at or after since.
	SentSince(ctx context.Context, licenseID uint, notificationType Type, since time.Time) (bool, error)
}
