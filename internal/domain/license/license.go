package license

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

// License is the aggregate root for one customer's grant of one product.
// Expiry is always derived from issue date and validity.
type License struct {
	id               uint
	customerID       uint
	productID        uint
	quantity         int
	issueDate        time.Time
	installationDate *time.Time
	validityMonths   int
	expiryDate       time.Time
	amounts          vo.Amounts
	remarks          string
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// Snapshot is the serialisable state recorded in lifecycle events.
type Snapshot struct {
	Quantity       int        `json:"quantity"`
	IssueDate      string     `json:"issue_date"`
	ValidityMonths int        `json:"validity_months"`
	ExpiryDate     string     `json:"expiry_date"`
	Amounts        vo.Amounts `json:"amounts"`
	Version        int        `json:"version"`
}

// NewLicense issues a license. The amount must be positive.
func NewLicense(
	customerID, productID uint,
	quantity int,
	issueDate time.Time,
	installationDate *time.Time,
	validityMonths int,
	amount vo.Money,
	remarks string,
) (*License, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if issueDate.IsZero() {
		return nil, fmt.Errorf("issue date is required")
	}
	if amount.IsZero() || !amount.Amount().IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}

	issueDate = biztime.Date(issueDate)
	expiry, err := ComputeExpiry(issueDate, validityMonths)
	if err != nil {
		return nil, err
	}

	if installationDate != nil {
		d := biztime.Date(*installationDate)
		installationDate = &d
	}

	now := biztime.NowUTC()
	return &License{
		customerID:       customerID,
		productID:        productID,
		quantity:         quantity,
		issueDate:        issueDate,
		installationDate: installationDate,
		validityMonths:   validityMonths,
		expiryDate:       expiry,
		amounts:          vo.NewAmounts(amount),
		remarks:          strings.TrimSpace(remarks),
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructLicense rebuilds a license from persistence.
func ReconstructLicense(
	id, customerID, productID uint,
	quantity int,
	issueDate time.Time,
	installationDate *time.Time,
	validityMonths int,
	expiryDate time.Time,
	amounts vo.Amounts,
	remarks string,
	version int,
	createdAt, updatedAt time.Time,
) (*License, error) {
	if id == 0 {
		return nil, fmt.Errorf("license ID cannot be zero")
	}
	if customerID == 0 || productID == 0 {
		return nil, fmt.Errorf("customer and product IDs are required")
	}
	if amounts == nil {
		amounts = vo.Amounts{}
	}

	return &License{
		id:               id,
		customerID:       customerID,
		productID:        productID,
		quantity:         quantity,
		issueDate:        issueDate,
		installationDate: installationDate,
		validityMonths:   validityMonths,
		expiryDate:       expiryDate,
		amounts:          amounts,
		remarks:          remarks,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (l *License) ID() uint                     { return l.id }
func (l *License) CustomerID() uint             { return l.customerID }
func (l *License) ProductID() uint              { return l.productID }
func (l *License) Quantity() int                { return l.quantity }
func (l *License) IssueDate() time.Time         { return l.issueDate }
func (l *License) InstallationDate() *time.Time { return l.installationDate }
func (l *License) ValidityMonths() int          { return l.validityMonths }
func (l *License) ExpiryDate() time.Time        { return l.expiryDate }
func (l *License) Remarks() string              { return l.remarks }
func (l *License) Version() int                 { return l.version }
func (l *License) CreatedAt() time.Time         { return l.createdAt }
func (l *License) UpdatedAt() time.Time         { return l.updatedAt }

// Amounts returns a copy of the per-currency totals.
func (l *License) Amounts() vo.Amounts {
	return l.amounts.Clone()
}

// SetID sets the license ID after persistence
func (l *License) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("license ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("license ID cannot be zero")
	}
	l.id = id
	return nil
}

// Status classifies the license on today.
func (l *License) Status(today time.Time, soonThresholdDays int) vo.Status {
	return Classify(l.expiryDate, today, soonThresholdDays)
}

// DaysRemaining returns days until expiry, negative once expired.
func (l *License) DaysRemaining(today time.Time) int {
	return DaysRemaining(l.expiryDate, today)
}

// Snapshot captures the current state for the lifecycle event log.
func (l *License) Snapshot() *Snapshot {
	return &Snapshot{
		Quantity:       l.quantity,
		IssueDate:      biztime.FormatDate(l.issueDate),
		ValidityMonths: l.validityMonths,
		ExpiryDate:     biztime.FormatDate(l.expiryDate),
		Amounts:        l.amounts.Clone(),
		Version:        l.version,
	}
}

// ResolveCurrency picks the currency an amount change applies to. An empty
// code is allowed only when the license carries exactly one currency.
func (l *License) ResolveCurrency(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		cur, ok := l.amounts.SingleCurrency()
		if !ok {
			return "", fmt.Errorf("%w: currency is required when a license carries several currencies", ErrCurrencyNotCarried)
		}
		return cur, nil
	}
	cur, err := vo.NormalizeCurrency(code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if _, ok := l.amounts.Get(cur); !ok {
		return "", fmt.Errorf("%w: %s", ErrCurrencyNotCarried, cur)
	}
	return cur, nil
}

// Upgrade increases capacity without touching the term. The change is noted
// in remarks as "Upgraded on {date}: quantity X→Y, amount A→B, remarks: ...".
func (l *License) Upgrade(additionalQuantity int, additionalAmount decimal.Decimal, currency, note string, on time.Time) error {
	if additionalQuantity <= 0 {
		return fmt.Errorf("%w: additional quantity must be greater than zero", ErrInvalidQuantity)
	}
	if additionalAmount.IsNegative() {
		return fmt.Errorf("%w: additional amount must not be negative", ErrInvalidAmount)
	}

	cur, err := l.ResolveCurrency(currency)
	if err != nil {
		return err
	}
	delta, err := vo.NewMoney(additionalAmount, cur)
	if err != nil {
		return err
	}
	amounts, err := l.amounts.Add(delta)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCurrencyNotCarried, err)
	}

	oldQuantity := l.quantity
	oldAmount, _ := l.amounts.Get(cur)
	newAmount, _ := amounts.Get(cur)

	entry := fmt.Sprintf("Upgraded on %s: quantity %d→%d, amount %s %s→%s %s",
		biztime.FormatDate(on), oldQuantity, oldQuantity+additionalQuantity,
		cur, oldAmount.StringFixed(2), cur, newAmount.StringFixed(2))
	if note = strings.TrimSpace(note); note != "" {
		entry += ", remarks: " + note
	}

	l.quantity += additionalQuantity
	l.amounts = amounts
	l.remarks = appendRemark(l.remarks, entry)
	l.version++
	l.updatedAt = biztime.NowUTC()
	return nil
}

// RenewalTerms describes a term extension.
type RenewalTerms struct {
	RenewedOn      time.Time
	Quantity       int
	ValidityMonths int
	Amount         vo.Money
	DueDate        *time.Time
	Status         vo.RenewalStatus
	InvoiceNo      string
	Confirmation   vo.ConfirmationStatus
	Remarks        string
}

// Renew restarts the term on RenewedOn with the new quantity, validity and
// amount, and returns the ledger entry to append. A missing due date is
// projected from the new term.
func (l *License) Renew(terms RenewalTerms) (*Renewal, error) {
	if terms.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if terms.Amount.IsZero() || !terms.Amount.Amount().IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	if terms.RenewedOn.IsZero() {
		return nil, fmt.Errorf("renewal date is required")
	}

	renewedOn := biztime.Date(terms.RenewedOn)
	expiry, err := ComputeExpiry(renewedOn, terms.ValidityMonths)
	if err != nil {
		return nil, err
	}

	dueDate := expiry
	if terms.DueDate != nil {
		dueDate = biztime.Date(*terms.DueDate)
	}

	renewal, err := NewRenewal(
		l.id, l.customerID, l.productID,
		terms.Quantity, dueDate, terms.Amount,
		terms.Status, terms.InvoiceNo, terms.Confirmation, terms.Remarks,
	)
	if err != nil {
		return nil, err
	}

	l.issueDate = renewedOn
	l.validityMonths = terms.ValidityMonths
	l.expiryDate = expiry
	l.quantity = terms.Quantity
	l.amounts = vo.NewAmounts(terms.Amount)
	l.version++
	l.updatedAt = biztime.NowUTC()

	return renewal, nil
}

func appendRemark(existing, entry string) string {
	if existing == "" {
		return entry
	}
	return existing + "\n" + entry
}
