package valueobjects

import (
	"fmt"
	"strings"
)

// RenewalStatus is the payment state recorded on a renewal ledger entry.
type RenewalStatus string

const (
	RenewalStatusPending       RenewalStatus = "pending"
	RenewalStatusPaid          RenewalStatus = "paid"
	RenewalStatusPartiallyPaid RenewalStatus = "partially_paid"
	RenewalStatusCancelled     RenewalStatus = "cancelled"
)

var ValidRenewalStatuses = map[RenewalStatus]bool{
	RenewalStatusPending:       true,
	RenewalStatusPaid:          true,
	RenewalStatusPartiallyPaid: true,
	RenewalStatusCancelled:     true,
}

func (s RenewalStatus) String() string {
	return string(s)
}

// ParseRenewalStatus accepts "Paid", "partially paid" and similar spellings.
// An empty value means pending.
func ParseRenewalStatus(s string) (RenewalStatus, error) {
	if strings.TrimSpace(s) == "" {
		return RenewalStatusPending, nil
	}
	status := RenewalStatus(normalizeToken(s))
	if !ValidRenewalStatuses[status] {
		return "", fmt.Errorf("invalid renewal status: %s", s)
	}
	return status, nil
}

// ConfirmationStatus records whether the client confirmed a renewal.
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationDeclined  ConfirmationStatus = "declined"
)

var ValidConfirmationStatuses = map[ConfirmationStatus]bool{
	ConfirmationPending:   true,
	ConfirmationConfirmed: true,
	ConfirmationDeclined:  true,
}

func (s ConfirmationStatus) String() string {
	return string(s)
}

// ParseConfirmationStatus treats an empty value as pending.
func ParseConfirmationStatus(s string) (ConfirmationStatus, error) {
	if strings.TrimSpace(s) == "" {
		return ConfirmationPending, nil
	}
	status := ConfirmationStatus(normalizeToken(s))
	if !ValidConfirmationStatuses[status] {
		return "", fmt.Errorf("invalid confirmation status: %s", s)
	}
	return status, nil
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
