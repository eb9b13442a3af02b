package notification

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/corpit/licensedesk/internal/shared/biztime"
)

const testSubjectPrefix = "[TEST] "

// Reminder holds what a renewal reminder says about one license.
type Reminder struct {
	CompanyName   string
	CustomerName  string
	ContactPerson string
	ProductName   string
	LicenseUnit   string
	Quantity      int
	ExpiryDate    time.Time
	DaysRemaining int
	Type          Type
	// NoteHTML must already be sanitized.
	NoteHTML string
}

type Message struct {
	Subject  string
	HTMLBody string
}

// Subject returns the reminder subject line for the reminder type.
func (r Reminder) Subject() string {
	if r.Type == TypeExpired {
		return "URGENT: License Renewal Required for " + r.ProductName
	}
	return "Upcoming License Renewal for " + r.ProductName
}

// StatusPhrase renders "expired N days ago", "expires today" or "expiring in N days".
func (r Reminder) StatusPhrase() string {
	days := r.DaysRemaining
	switch {
	case days < 0:
		return fmt.Sprintf("expired %s ago", pluralDays(-days))
	case days == 0:
		return "expires today"
	default:
		return fmt.Sprintf("expiring in %s", pluralDays(days))
	}
}

// Compose renders the reminder. Test reminders get a "[TEST]" subject prefix.
func (r Reminder) Compose(test bool) Message {
	subject := r.Subject()
	if test {
		subject = testSubjectPrefix + subject
	}

	greeting := r.ContactPerson
	if greeting == "" {
		greeting = r.CustomerName
	}

	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", html.EscapeString(greeting))
	fmt.Fprintf(&b, "<p>Your license for <strong>%s</strong> held by %s is <strong>%s</strong> (expiry date %s).</p>",
		html.EscapeString(r.ProductName),
		html.EscapeString(r.CustomerName),
		html.EscapeString(r.StatusPhrase()),
		biztime.FormatDate(r.ExpiryDate),
	)
	fmt.Fprintf(&b, "<table><tr><td>Product</td><td>%s</td></tr><tr><td>Quantity</td><td>%d %s</td></tr><tr><td>Expiry date</td><td>%s</td></tr></table>",
		html.EscapeString(r.ProductName),
		r.Quantity,
		html.EscapeString(strings.ToLower(r.LicenseUnit)),
		biztime.FormatDate(r.ExpiryDate),
	)
	if r.Type == TypeExpired {
		b.WriteString("<p>Please renew as soon as possible to avoid interruption of service.</p>")
	} else {
		b.WriteString("<p>Please contact us to arrange the renewal before the expiry date.</p>")
	}
	if r.NoteHTML != "" {
		b.WriteString("<div>")
		b.WriteString(r.NoteHTML)
		b.WriteString("</div>")
	}
	fmt.Fprintf(&b, "<p>Regards,<br/>%s</p>", html.EscapeString(r.CompanyName))
	b.WriteString("</body></html>")

	return Message{Subject: subject, HTMLBody: b.String()}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
