package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/corpit/licensedesk/internal/shared/constants"
)

// LicenseModel stores one license per customer and product. Amounts is a
// JSON object keyed by ISO currency code.
type LicenseModel struct {
	ID               uint           `gorm:"primaryKey"`
	CustomerID       uint           `gorm:"not null;uniqueIndex:idx_licenses_customer_product"`
	ProductID        uint           `gorm:"not null;uniqueIndex:idx_licenses_customer_product"`
	Quantity         int            `gorm:"not null"`
	IssueDate        datatypes.Date `gorm:"type:date;not null"`
	InstallationDate *time.Time     `gorm:"type:date"`
	ValidityMonths   int            `gorm:"not null"`
	ExpiryDate       datatypes.Date `gorm:"type:date;not null;index"`
	Amounts          datatypes.JSON `gorm:"not null"`
	Remarks          string         `gorm:"type:text"`
	Version          int            `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (LicenseModel) TableName() string {
	return constants.TableLicenses
}

type RenewalModel struct {
	ID                 uint            `gorm:"primaryKey"`
	LicenseID          uint            `gorm:"not null;index:idx_renewals_license_due"`
	CustomerID         uint            `gorm:"not null"`
	ProductID          uint            `gorm:"not null"`
	TotalQuantity      int             `gorm:"not null"`
	DueDate            datatypes.Date  `gorm:"type:date;not null;index:idx_renewals_license_due"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency           string          `gorm:"size:3;not null"`
	Status             string          `gorm:"size:20;not null"`
	InvoiceNo          string          `gorm:"size:50"`
	ConfirmationStatus string          `gorm:"size:20;not null"`
	Remarks            string          `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (RenewalModel) TableName() string {
	return constants.TableRenewals
}

// LicenseEventModel has no foreign key so events outlive their license.
type LicenseEventModel struct {
	ID          uint           `gorm:"primaryKey"`
	LicenseID   uint           `gorm:"not null;index"`
	EventType   string         `gorm:"size:20;not null;index"`
	Actor       string         `gorm:"size:100;not null"`
	OccurredAt  time.Time      `gorm:"not null;index"`
	BeforeState datatypes.JSON `gorm:"column:before_state"`
	AfterState  datatypes.JSON `gorm:"column:after_state"`
}

func (LicenseEventModel) TableName() string {
	return constants.TableLicenseEvents
}
