package valueobjects

// Status is the derived state of a license on a given day.
type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// NeedsRenewal reports whether reminders apply.
func (s Status) NeedsRenewal() bool {
	return s == StatusExpiringSoon || s == StatusExpired
}

var ValidStatuses = map[Status]bool{
	StatusActive:       true,
	StatusExpiringSoon: true,
	StatusExpired:      true,
}
