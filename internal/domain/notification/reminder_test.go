package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	licensevo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
)

func testReminder() Reminder {
	return Reminder{
		CompanyName:   "Corporate IT Solutions",
		CustomerName:  "Acme <Corp>",
		ContactPerson: "Jane Roe",
		ProductName:   "Office Suite",
		LicenseUnit:   "User",
		Quantity:      8,
		ExpiryDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		DaysRemaining: 10,
		Type:          TypeExpiring,
	}
}

func TestReminder_Compose(t *testing.T) {
	msg := testReminder().Compose(false)

	assert.Equal(t, "Upcoming License Renewal for Office Suite", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Dear Jane Roe")
	assert.Contains(t, msg.HTMLBody, "expiring in 10 days")
	assert.Contains(t, msg.HTMLBody, "2025-01-15")
	assert.Contains(t, msg.HTMLBody, "Acme &lt;Corp&gt;")
	assert.Contains(t, msg.HTMLBody, "8 user")
}

func TestReminder_ComposeExpired(t *testing.T) {
	r := testReminder()
	r.Type = TypeExpired
	r.DaysRemaining = -3
	r.NoteHTML = "<p>Call us</p>"

	msg := r.Compose(true)
	assert.Equal(t, "[TEST] URGENT: License Renewal Required for Office Suite", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "expired 3 days ago")
	assert.Contains(t, msg.HTMLBody, "<div><p>Call us</p></div>")
}

func TestReminder_StatusPhrase(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "expires today"},
		{1, "expiring in 1 day"},
		{21, "expiring in 21 days"},
		{-1, "expired 1 day ago"},
		{-40, "expired 40 days ago"},
	}
	for _, tt := range tests {
		r := Reminder{DaysRemaining: tt.days}
		assert.Equal(t, tt.want, r.StatusPhrase())
	}
}

func TestTypeForStatus(t *testing.T) {
	typ, ok := TypeForStatus(licensevo.StatusExpired)
	assert.True(t, ok)
	assert.Equal(t, TypeExpired, typ)

	typ, ok = TypeForStatus(licensevo.StatusExpiringSoon)
	assert.True(t, ok)
	assert.Equal(t, TypeExpiring, typ)

	_, ok = TypeForStatus(licensevo.StatusActive)
	assert.False(t, ok)
}

func TestNewRenewalNotification(t *testing.T) {
	n, err := NewRenewalNotification(1, 2, 3, TypeExpired, "ops@acme.example", nil)
	require.NoError(t, err)
	assert.True(t, n.Sent())
	assert.Empty(t, n.ErrorMessage())

	n, err = NewRenewalNotification(1, 2, 3, TypeExpiring, "ops@acme.example", errors.New("smtp down"))
	require.NoError(t, err)
	assert.False(t, n.Sent())
	assert.Equal(t, "smtp down", n.ErrorMessage())
	assert.False(t, n.Unconfirmed())

	n, err = NewRenewalNotification(1, 2, 3, TypeExpiring, "ops@acme.example",
		fmt.Errorf("%w: %w", ErrDeliveryUnconfirmed, context.DeadlineExceeded))
	require.NoError(t, err)
	assert.False(t, n.Sent())
	assert.True(t, n.Unconfirmed())

	_, err = NewRenewalNotification(1, 2, 3, Type("weekly"), "x", nil)
	assert.Error(t, err)
}
