package license

import (
	"time"

	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

// DefaultExpiringSoonDays is the window used when no threshold is configured.
const DefaultExpiringSoonDays = 21

// DaysRemaining returns whole calendar days from today until expiry.
// Negative values mean the license has expired.
func DaysRemaining(expiry, today time.Time) int {
	return biztime.DaysBetween(today, expiry)
}

// Classify derives the license status on today. A negative threshold is treated as zero.
func Classify(expiry, today time.Time, soonThresholdDays int) vo.Status {
	if soonThresholdDays < 0 {
		soonThresholdDays = 0
	}

	days := DaysRemaining(expiry, today)
	switch {
	case days < 0:
		return vo.StatusExpired
	case days <= soonThresholdDays:
		return vo.StatusExpiringSoon
	default:
		return vo.StatusActive
	}
}

// ExpiryWindow returns the inclusive expiry range matching status on today.
// A nil bound is open.
func ExpiryWindow(status vo.Status, today time.Time, soonThresholdDays int) (from, to *time.Time) {
	if soonThresholdDays < 0 {
		soonThresholdDays = 0
	}
	today = biztime.Date(today)
	soonEnd := today.AddDate(0, 0, soonThresholdDays)
	yesterday := today.AddDate(0, 0, -1)
	afterSoon := soonEnd.AddDate(0, 0, 1)

	switch status {
	case vo.StatusExpired:
		return nil, &yesterday
	case vo.StatusExpiringSoon:
		return &today, &soonEnd
	case vo.StatusActive:
		return &afterSoon, nil
	default:
		return nil, nil
	}
}
