package notification

import (
	"errors"
	"fmt"
	"time"

	licensevo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

type Type string

const (
	TypeExpired  Type = "expired"
	TypeExpiring Type = "expiring"
)

var ValidTypes = map[Type]bool{
	TypeExpired:  true,
	TypeExpiring: true,
}

// TypeForStatus maps a license status to the reminder it calls for.
func TypeForStatus(status licensevo.Status) (Type, bool) {
	switch status {
	case licensevo.StatusExpired:
		return TypeExpired, true
	case licensevo.StatusExpiringSoon:
		return TypeExpiring, true
	default:
		return "", false
	}
}

// ErrDeliveryUnconfirmed is returned by a Dispatcher that gave up waiting for
// the mail server. The message may still be delivered.
var ErrDeliveryUnconfirmed = errors.New("delivery not confirmed before timeout")

// RenewalNotification logs one reminder attempt, successful or not.
type RenewalNotification struct {
	id               uint
	licenseID        uint
	customerID       uint
	productID        uint
	notificationType Type
	recipient        string
	sent             bool
	unconfirmed      bool
	errorMessage     string
	notifiedAt       time.Time
}

func NewRenewalNotification(licenseID, customerID, productID uint, notificationType Type, recipient string, sendErr error) (*RenewalNotification, error) {
	if licenseID == 0 {
		return nil, fmt.Errorf("license ID cannot be zero")
	}
	if !ValidTypes[notificationType] {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}

	n := &RenewalNotification{
		licenseID:        licenseID,
		customerID:       customerID,
		productID:        productID,
		notificationType: notificationType,
		recipient:        recipient,
		sent:             sendErr == nil,
		unconfirmed:      errors.Is(sendErr, ErrDeliveryUnconfirmed),
		notifiedAt:       biztime.NowUTC(),
	}
	if sendErr != nil {
		n.errorMessage = sendErr.Error()
	}
	return n, nil
}

func ReconstructRenewalNotification(
	id, licenseID, customerID, productID uint,
	notificationType Type,
	recipient string,
	sent bool,
	unconfirmed bool,
	errorMessage string,
	notifiedAt time.Time,
) *RenewalNotification {
	return &RenewalNotification{
		id:               id,
		licenseID:        licenseID,
		customerID:       customerID,
		productID:        productID,
		notificationType: notificationType,
		recipient:        recipient,
		sent:             sent,
		unconfirmed:      unconfirmed,
		errorMessage:     errorMessage,
		notifiedAt:       notifiedAt,
	}
}

func (n *RenewalNotification) ID() uint               { return n.id }
func (n *RenewalNotification) LicenseID() uint        { return n.licenseID }
func (n *RenewalNotification) CustomerID() uint       { return n.customerID }
func (n *RenewalNotification) ProductID() uint        { return n.productID }
func (n *RenewalNotification) NotificationType() Type { return n.notificationType }
func (n *RenewalNotification) Recipient() string      { return n.recipient }
func (n *RenewalNotification) Sent() bool             { return n.sent }
func (n *RenewalNotification) ErrorMessage() string   { return n.errorMessage }
func (n *RenewalNotification) NotifiedAt() time.Time  { return n.notifiedAt }
func (n *RenewalNotification) SetID(id uint)          { n.id = id }

// Unconfirmed reports an attempt that timed out and may have been delivered.
func (n *RenewalNotification) Unconfirmed() bool { return n.unconfirmed }
