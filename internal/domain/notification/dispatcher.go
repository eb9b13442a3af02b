package notification

import "context"

// Dispatcher delivers one HTML email. A nil error means it was accepted for delivery.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
