package license

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

// Renewal is an immutable ledger entry written when a license is renewed.
type Renewal struct {
	id            uint
	licenseID     uint
	customerID    uint
	productID     uint
	totalQuantity int
	dueDate       time.Time
	amount        decimal.Decimal
	currency      string
	status        vo.RenewalStatus
	invoiceNo     string
	confirmation  vo.ConfirmationStatus
	remarks       string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRenewal(
	licenseID, customerID, productID uint,
	totalQuantity int,
	dueDate time.Time,
	amount vo.Money,
	status vo.RenewalStatus,
	invoiceNo string,
	confirmation vo.ConfirmationStatus,
	remarks string,
) (*Renewal, error) {
	if licenseID == 0 {
		return nil, fmt.Errorf("license ID is required")
	}
	if totalQuantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("renewal due date is required")
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: currency is required", ErrInvalidAmount)
	}
	if status == "" {
		status = vo.RenewalStatusPending
	}
	if !vo.ValidRenewalStatuses[status] {
		return nil, fmt.Errorf("invalid renewal status: %s", status)
	}
	if confirmation == "" {
		confirmation = vo.ConfirmationPending
	}
	if !vo.ValidConfirmationStatuses[confirmation] {
		return nil, fmt.Errorf("invalid confirmation status: %s", confirmation)
	}

	now := biztime.NowUTC()
	return &Renewal{
		licenseID:     licenseID,
		customerID:    customerID,
		productID:     productID,
		totalQuantity: totalQuantity,
		dueDate:       biztime.Date(dueDate),
		amount:        amount.Amount(),
		currency:      amount.Currency(),
		status:        status,
		invoiceNo:     strings.TrimSpace(invoiceNo),
		confirmation:  confirmation,
		remarks:       strings.TrimSpace(remarks),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRenewal(
	id, licenseID, customerID, productID uint,
	totalQuantity int,
	dueDate time.Time,
	amount decimal.Decimal,
	currency string,
	status vo.RenewalStatus,
	invoiceNo string,
	confirmation vo.ConfirmationStatus,
	remarks string,
	createdAt, updatedAt time.Time,
) (*Renewal, error) {
	if id == 0 {
		return nil, fmt.Errorf("renewal ID cannot be zero")
	}
	if !vo.ValidRenewalStatuses[status] {
		return nil, fmt.Errorf("invalid renewal status: %s", status)
	}
	if !vo.ValidConfirmationStatuses[confirmation] {
		return nil, fmt.Errorf("invalid confirmation status: %s", confirmation)
	}

	return &Renewal{
		id:            id,
		licenseID:     licenseID,
		customerID:    customerID,
		productID:     productID,
		totalQuantity: totalQuantity,
		dueDate:       dueDate,
		amount:        amount,
		currency:      currency,
		status:        status,
		invoiceNo:     invoiceNo,
		confirmation:  confirmation,
		remarks:       remarks,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *Renewal) ID() uint                                  { return r.id }
func (r *Renewal) LicenseID() uint                           { return r.licenseID }
func (r *Renewal) CustomerID() uint                          { return r.customerID }
func (r *Renewal) ProductID() uint                           { return r.productID }
func (r *Renewal) TotalQuantity() int                        { return r.totalQuantity }
func (r *Renewal) DueDate() time.Time                        { return r.dueDate }
func (r *Renewal) Amount() decimal.Decimal                   { return r.amount }
func (r *Renewal) Currency() string                          { return r.currency }
func (r *Renewal) Status() vo.RenewalStatus                  { return r.status }
func (r *Renewal) InvoiceNo() string                         { return r.invoiceNo }
func (r *Renewal) ConfirmationStatus() vo.ConfirmationStatus { return r.confirmation }
func (r *Renewal) Remarks() string                           { return r.remarks }
func (r *Renewal) CreatedAt() time.Time                      { return r.createdAt }
func (r *Renewal) UpdatedAt() time.Time                      { return r.updatedAt }

// SetID sets the renewal ID after persistence
func (r *Renewal) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("renewal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("renewal ID cannot be zero")
	}
	r.id = id
	return nil
}

// AssignInvoiceNo fills in an invoice number on an entry that has none.
func (r *Renewal) AssignInvoiceNo(invoiceNo string) {
	if r.id == 0 && r.invoiceNo == "" {
		r.invoiceNo = invoiceNo
	}
}
