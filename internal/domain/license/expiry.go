package license

import "time"

// MinValidityMonths is the shortest term a license can be issued or renewed for.
const MinValidityMonths = 1

// ComputeExpiry adds validityMonths calendar months to issueDate. When the
// issue day does not exist in the target month the result is clamped to that
// month's last day, so Jan 31 + 1 month is Feb 28 or Feb 29. Time of day is dropped.
func ComputeExpiry(issueDate time.Time, validityMonths int) (time.Time, error) {
	if validityMonths < MinValidityMonths {
		return time.Time{}, ErrValidityMonths(validityMonths)
	}

	y, m, d := issueDate.Date()
	// day 1 never overflows, so time.Date only normalises the month
	first := time.Date(y, m+time.Month(validityMonths), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC), nil
}

// ProjectRenewalDue returns the date a renewal of the given term, started on
// from, falls due.
func ProjectRenewalDue(from time.Time, validityMonths int) (time.Time, error) {
	return ComputeExpiry(from, validityMonths)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
