package dto

import (
	"time"

	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	"github.com/corpit/licensedesk/internal/shared/mapper"
)

type LicenseDTO struct {
	ID                   uint       `json:"id"`
	CustomerID           uint       `json:"customer_id"`
	CustomerName         string     `json:"customer_name,omitempty"`
	CustomerEmail        string     `json:"customer_email,omitempty"`
	ProductID            uint       `json:"product_id"`
	ProductName          string     `json:"product_name,omitempty"`
	ProductType          string     `json:"product_type,omitempty"`
	LicenseUnit          string     `json:"license_unit,omitempty"`
	Quantity             int        `json:"quantity"`
	IssueDate            string     `json:"issue_date"`
	InstallationDate     *string    `json:"installation_date"`
	ValidityPeriodMonths int        `json:"validity_period_months"`
	ExpiryDate           string     `json:"expiry_date"`
	DaysRemaining        int        `json:"days_remaining"`
	Status               string     `json:"status"`
	Amounts              vo.Amounts `json:"amounts"`
	Remarks              string     `json:"remarks"`
	Version              int        `json:"version"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type RenewalDTO struct {
	ID                       uint      `json:"id"`
	LicenseID                uint      `json:"license_id"`
	CustomerID               uint      `json:"customer_id"`
	ProductID                uint      `json:"product_id"`
	TotalQuantity            int       `json:"total_quantity"`
	RenewalDueDate           string    `json:"renewal_due_date"`
	Amount                   string    `json:"amount"`
	Currency                 string    `json:"currency"`
	Status                   string    `json:"status"`
	InvoiceNo                string    `json:"invoice_no"`
	ClientConfirmationStatus string    `json:"client_confirmation_status"`
	Remarks                  string    `json:"remarks"`
	CreatedAt                time.Time `json:"created_at"`
}

type EventDTO struct {
	ID         uint              `json:"id"`
	EventType  string            `json:"event_type"`
	Actor      string            `json:"actor"`
	OccurredAt time.Time         `json:"occurred_at"`
	Before     *license.Snapshot `json:"before,omitempty"`
	After      *license.Snapshot `json:"after,omitempty"`
}

type LicenseDetailDTO struct {
	LicenseDTO
	Renewals []RenewalDTO `json:"renewals"`
	Events   []EventDTO   `json:"events"`
}

type DashboardStatsDTO struct {
	TotalCustomers       int64  `json:"total_customers"`
	ActiveLicenses       int64  `json:"active_licenses"`
	ExpiredLicenses      int64  `json:"expired_licenses"`
	ExpiringSoonLicenses int64  `json:"expiring_soon_licenses"`
	ExpiringSoonDays     int    `json:"expiring_soon_days"`
	IssuedLast7Days      int64  `json:"issued_last_7_days"`
	RenewedLast7Days     int64  `json:"renewed_last_7_days"`
	AsOf                 string `json:"as_of"`
}

// ToLicenseDTO renders a license as seen on today. Customer and product may be nil.
func ToLicenseDTO(l *license.License, c *customer.Customer, p *product.Product, today time.Time, soonThresholdDays int) *LicenseDTO {
	if l == nil {
		return nil
	}

	out := &LicenseDTO{
		ID:                   l.ID(),
		CustomerID:           l.CustomerID(),
		ProductID:            l.ProductID(),
		Quantity:             l.Quantity(),
		IssueDate:            biztime.FormatDate(l.IssueDate()),
		ValidityPeriodMonths: l.ValidityMonths(),
		ExpiryDate:           biztime.FormatDate(l.ExpiryDate()),
		DaysRemaining:        l.DaysRemaining(today),
		Status:               l.Status(today, soonThresholdDays).String(),
		Amounts:              l.Amounts(),
		Remarks:              l.Remarks(),
		Version:              l.Version(),
		CreatedAt:            l.CreatedAt(),
		UpdatedAt:            l.UpdatedAt(),
	}
	if d := l.InstallationDate(); d != nil {
		s := biztime.FormatDate(*d)
		out.InstallationDate = &s
	}
	if c != nil {
		out.CustomerName = c.Name()
		out.CustomerEmail = c.Email()
	}
	if p != nil {
		out.ProductName = p.Name()
		out.ProductType = string(p.Type())
		out.LicenseUnit = string(p.LicenseUnit())
	}
	return out
}

func ToRenewalDTO(r *license.Renewal) RenewalDTO {
	return RenewalDTO{
		ID:                       r.ID(),
		LicenseID:                r.LicenseID(),
		CustomerID:               r.CustomerID(),
		ProductID:                r.ProductID(),
		TotalQuantity:            r.TotalQuantity(),
		RenewalDueDate:           biztime.FormatDate(r.DueDate()),
		Amount:                   r.Amount().StringFixed(2),
		Currency:                 r.Currency(),
		Status:                   r.Status().String(),
		InvoiceNo:                r.InvoiceNo(),
		ClientConfirmationStatus: r.ConfirmationStatus().String(),
		Remarks:                  r.Remarks(),
		CreatedAt:                r.CreatedAt(),
	}
}

func ToRenewalDTOs(renewals []*license.Renewal) []RenewalDTO {
	out := mapper.MapSlice(renewals, ToRenewalDTO)
	if out == nil {
		return []RenewalDTO{}
	}
	return out
}

func ToEventDTOs(events []*license.Event) []EventDTO {
	out := mapper.MapSlice(events, func(e *license.Event) EventDTO {
		return EventDTO{
			ID:         e.ID(),
			EventType:  e.EventType(),
			Actor:      e.Actor(),
			OccurredAt: e.OccurredAt(),
			Before:     e.Before(),
			After:      e.After(),
		}
	})
	if out == nil {
		return []EventDTO{}
	}
	return out
}
