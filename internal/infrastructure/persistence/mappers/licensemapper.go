package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/corpit/licensedesk/internal/domain/license"
	vo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

// LicenseMapper converts the license aggregate and its ledger and event rows.
type LicenseMapper interface {
	ToModel(l *license.License) (*models.LicenseModel, error)
	ToDomain(m *models.LicenseModel) (*license.License, error)
	RenewalToModel(r *license.Renewal) *models.RenewalModel
	RenewalToDomain(m *models.RenewalModel) (*license.Renewal, error)
	EventToModel(e *license.Event) (*models.LicenseEventModel, error)
	EventToDomain(m *models.LicenseEventModel) (*license.Event, error)
}

type LicenseMapperImpl struct{}

func NewLicenseMapper() LicenseMapper {
	return &LicenseMapperImpl{}
}

func (m *LicenseMapperImpl) ToModel(l *license.License) (*models.LicenseModel, error) {
	amounts, err := json.Marshal(l.Amounts())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal license amounts: %w", err)
	}

	return &models.LicenseModel{
		ID:               l.ID(),
		CustomerID:       l.CustomerID(),
		ProductID:        l.ProductID(),
		Quantity:         l.Quantity(),
		IssueDate:        datatypes.Date(l.IssueDate()),
		InstallationDate: l.InstallationDate(),
		ValidityMonths:   l.ValidityMonths(),
		ExpiryDate:       datatypes.Date(l.ExpiryDate()),
		Amounts:          datatypes.JSON(amounts),
		Remarks:          l.Remarks(),
		Version:          l.Version(),
		CreatedAt:        l.CreatedAt(),
		UpdatedAt:        l.UpdatedAt(),
	}, nil
}

func (m *LicenseMapperImpl) ToDomain(model *models.LicenseModel) (*license.License, error) {
	var amounts vo.Amounts
	if err := json.Unmarshal(model.Amounts, &amounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal license amounts (id=%d): %w", model.ID, err)
	}

	var installation *time.Time
	if model.InstallationDate != nil {
		d := biztime.Date(model.InstallationDate.UTC())
		installation = &d
	}

	return license.ReconstructLicense(
		model.ID,
		model.CustomerID,
		model.ProductID,
		model.Quantity,
		calendarDate(model.IssueDate),
		installation,
		model.ValidityMonths,
		calendarDate(model.ExpiryDate),
		amounts,
		model.Remarks,
		model.Version,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}

func (m *LicenseMapperImpl) RenewalToModel(r *license.Renewal) *models.RenewalModel {
	return &models.RenewalModel{
		ID:                 r.ID(),
		LicenseID:          r.LicenseID(),
		CustomerID:         r.CustomerID(),
		ProductID:          r.ProductID(),
		TotalQuantity:      r.TotalQuantity(),
		DueDate:            datatypes.Date(r.DueDate()),
		Amount:             r.Amount(),
		Currency:           r.Currency(),
		Status:             r.Status().String(),
		InvoiceNo:          r.InvoiceNo(),
		ConfirmationStatus: r.ConfirmationStatus().String(),
		Remarks:            r.Remarks(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func (m *LicenseMapperImpl) RenewalToDomain(model *models.RenewalModel) (*license.Renewal, error) {
	return license.ReconstructRenewal(
		model.ID,
		model.LicenseID,
		model.CustomerID,
		model.ProductID,
		model.TotalQuantity,
		calendarDate(model.DueDate),
		model.Amount,
		model.Currency,
		vo.RenewalStatus(model.Status),
		model.InvoiceNo,
		vo.ConfirmationStatus(model.ConfirmationStatus),
		model.Remarks,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}

func (m *LicenseMapperImpl) EventToModel(e *license.Event) (*models.LicenseEventModel, error) {
	before, err := snapshotJSON(e.Before())
	if err != nil {
		return nil, err
	}
	after, err := snapshotJSON(e.After())
	if err != nil {
		return nil, err
	}
	return &models.LicenseEventModel{
		ID:          e.ID(),
		LicenseID:   e.LicenseID(),
		EventType:   e.EventType(),
		Actor:       e.Actor(),
		OccurredAt:  e.OccurredAt(),
		BeforeState: before,
		AfterState:  after,
	}, nil
}

func (m *LicenseMapperImpl) EventToDomain(model *models.LicenseEventModel) (*license.Event, error) {
	before, err := parseSnapshot(model.BeforeState)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal event before state (id=%d): %w", model.ID, err)
	}
	after, err := parseSnapshot(model.AfterState)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal event after state (id=%d): %w", model.ID, err)
	}
	return license.ReconstructEvent(model.ID, model.LicenseID, model.EventType, model.Actor, model.OccurredAt.UTC(), before, after)
}

func snapshotJSON(s *license.Snapshot) (datatypes.JSON, error) {
	if s == nil {
		return nil, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal license snapshot: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func parseSnapshot(raw datatypes.JSON) (*license.Snapshot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s license.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// calendarDate normalises a DATE column to midnight UTC whatever zone the driver used.
func calendarDate(d datatypes.Date) time.Time {
	return biztime.Date(time.Time(d))
}
