package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	apperrors "github.com/corpit/licensedesk/internal/shared/errors"
	"github.com/corpit/licensedesk/internal/shared/markdown"
)

// Settings configures reminder content and classification.
type Settings struct {
	CompanyName      string
	ExpiringSoonDays int
	// SendTimeout bounds a single email send.
	SendTimeout time.Duration
	Today       func() time.Time
}

func (s Settings) today() time.Time {
	if s.Today != nil {
		return biztime.Date(s.Today())
	}
	return biztime.Today()
}

func (s Settings) threshold() int {
	if s.ExpiringSoonDays < 0 {
		return 0
	}
	return s.ExpiringSoonDays
}

// composer turns a license into a reminder message.
type composer struct {
	renderer markdown.Renderer
	settings Settings
}

func (c composer) noteHTML(note string) (string, error) {
	if note == "" {
		return "", nil
	}
	out, err := c.renderer.ToHTMLSanitized(note)
	if err != nil {
		return "", fmt.Errorf("failed to render note: %w", err)
	}
	return out, nil
}

// reminderType picks the reminder for a license. Active licenses get the
// upcoming-renewal wording.
func reminderType(l *license.License, today time.Time, threshold int) notification.Type {
	if t, ok := notification.TypeForStatus(l.Status(today, threshold)); ok {
		return t
	}
	return notification.TypeExpiring
}

func (c composer) compose(l *license.License, cust *customer.Customer, prod *product.Product, noteHTML string, test bool) (notification.Type, notification.Message) {
	today := c.settings.today()
	typ := reminderType(l, today, c.settings.threshold())

	reminder := notification.Reminder{
		CompanyName:   c.settings.CompanyName,
		CustomerName:  cust.Name(),
		ContactPerson: cust.ContactPerson(),
		ProductName:   prod.Name(),
		LicenseUnit:   string(prod.LicenseUnit()),
		Quantity:      l.Quantity(),
		ExpiryDate:    l.ExpiryDate(),
		DaysRemaining: l.DaysRemaining(today),
		Type:          typ,
		NoteHTML:      noteHTML,
	}
	return typ, reminder.Compose(test)
}

func (c composer) sendTimeout() time.Duration {
	if c.settings.SendTimeout <= 0 {
		return 30 * time.Second
	}
	return c.settings.SendTimeout
}

func send(ctx context.Context, d notification.Dispatcher, timeout time.Duration, to string, msg notification.Message) error {
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return d.Send(sendCtx, to, msg.Subject, msg.HTMLBody)
}

func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	if apperrors.IsConnectionError(err) {
		return apperrors.NewUnavailableError("license store is unavailable", err.Error())
	}
	return err
}
