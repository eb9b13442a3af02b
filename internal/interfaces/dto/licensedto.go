package dto

import (
	"github.com/shopspring/decimal"

	"github.com/corpit/licensedesk/internal/application/license/usecases"
)

// IssueLicenseRequest represents HTTP request to issue a license.
type IssueLicenseRequest struct {
	CustomerID       uint            `json:"customer_id" binding:"required"`
	ProductID        uint            `json:"product_id" binding:"required"`
	Quantity         int             `json:"quantity" binding:"required,gte=1"`
	IssueDate        string          `json:"issue_date" binding:"required,datetime=2006-01-02"`
	InstallationDate string          `json:"installation_date" binding:"omitempty,datetime=2006-01-02"`
	ValidityMonths   *int            `json:"validity_period_months" binding:"omitempty,gte=1,lte=120"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency" binding:"required,len=3"`
	Remarks          string          `json:"remarks" binding:"max=2000"`
}

func (r *IssueLicenseRequest) ToCommand(actor string) usecases.IssueLicenseCommand {
	return usecases.IssueLicenseCommand{
		CustomerID:       r.CustomerID,
		ProductID:        r.ProductID,
		Quantity:         r.Quantity,
		IssueDate:        r.IssueDate,
		InstallationDate: r.InstallationDate,
		ValidityMonths:   r.ValidityMonths,
		Amount:           r.Amount,
		Currency:         r.Currency,
		Remarks:          r.Remarks,
		Actor:            actor,
	}
}

// UpgradeLicenseRequest adds seats and money to an existing license.
type UpgradeLicenseRequest struct {
	AdditionalQuantity int             `json:"additional_quantity" binding:"required,gte=1"`
	AdditionalAmount   decimal.Decimal `json:"additional_amount"`
	Currency           string          `json:"currency" binding:"omitempty,len=3"`
	Remarks            string          `json:"remarks" binding:"max=2000"`
}

func (r *UpgradeLicenseRequest) ToCommand(licenseID uint, actor string) usecases.UpgradeLicenseCommand {
	return usecases.UpgradeLicenseCommand{
		LicenseID:          licenseID,
		AdditionalQuantity: r.AdditionalQuantity,
		AdditionalAmount:   r.AdditionalAmount,
		Currency:           r.Currency,
		Remarks:            r.Remarks,
		Actor:              actor,
	}
}

// RenewLicenseRequest starts a new term and records a ledger entry.
type RenewLicenseRequest struct {
	Quantity           int             `json:"quantity" binding:"required,gte=1"`
	ValidityMonths     int             `json:"validity_period_months" binding:"required,gte=1,lte=120"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency" binding:"required,len=3"`
	DueDate            string          `json:"renewal_due_date" binding:"omitempty,datetime=2006-01-02"`
	Status             string          `json:"status" binding:"omitempty,oneof=pending paid partially_paid cancelled"`
	InvoiceNo          string          `json:"invoice_no" binding:"max=64"`
	ConfirmationStatus string          `json:"client_confirmation_status" binding:"omitempty,oneof=pending confirmed declined"`
	Remarks            string          `json:"remarks" binding:"max=2000"`
	RenewedOn          string          `json:"renewed_on" binding:"omitempty,datetime=2006-01-02"`
}

func (r *RenewLicenseRequest) ToCommand(licenseID uint, actor string) usecases.RenewLicenseCommand {
	return usecases.RenewLicenseCommand{
		LicenseID:          licenseID,
		Quantity:           r.Quantity,
		ValidityMonths:     r.ValidityMonths,
		Amount:             r.Amount,
		Currency:           r.Currency,
		DueDate:            r.DueDate,
		Status:             r.Status,
		InvoiceNo:          r.InvoiceNo,
		ConfirmationStatus: r.ConfirmationStatus,
		Remarks:            r.Remarks,
		RenewedOn:          r.RenewedOn,
		Actor:              actor,
	}
}

// ListLicensesRequest is bound from the query string.
type ListLicensesRequest struct {
	CustomerID  *uint  `form:"customer_id" binding:"omitempty,gte=1"`
	ProductID   *uint  `form:"product_id" binding:"omitempty,gte=1"`
	ProductType string `form:"product_type" binding:"omitempty,oneof=Software OS Hardware"`
	Status      string `form:"status" binding:"omitempty,oneof=active expiring_soon expired"`
	Within      *int   `form:"within" binding:"omitempty,gte=0,lte=3650"`
	Page        int    `form:"page,default=1" binding:"min=1"`
	PageSize    int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

func (r *ListLicensesRequest) ToQuery() usecases.ListLicensesQuery {
	return usecases.ListLicensesQuery{
		CustomerID:  r.CustomerID,
		ProductID:   r.ProductID,
		ProductType: r.ProductType,
		Status:      r.Status,
		Within:      r.Within,
		Page:        r.Page,
		PageSize:    r.PageSize,
	}
}
