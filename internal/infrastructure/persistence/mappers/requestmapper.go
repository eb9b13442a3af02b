package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/domain/user"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
	"github.com/corpit/licensedesk/internal/shared/authorization"
)

func RequestToModel(r *request.Request) *models.RequestModel {
	return &models.RequestModel{
		ID:          r.ID(),
		Name:        r.Name(),
		RequestDate: datatypes.Date(r.Date()),
		Topic:       r.Topic(),
		Description: r.Description(),
		Currency:    r.Currency(),
		Amount:      r.Amount(),
		Status:      r.Status().String(),
		RequestedBy: r.RequestedBy(),
		ProcessedBy: r.ProcessedBy(),
		CreatedAt:   r.CreatedAt(),
		ProcessedAt: r.ProcessedAt(),
	}
}

func RequestToDomain(m *models.RequestModel) (*request.Request, error) {
	var processedAt *time.Time
	if m.ProcessedAt != nil {
		t := m.ProcessedAt.UTC()
		processedAt = &t
	}
	return request.ReconstructRequest(
		m.ID,
		m.Name,
		calendarDate(m.RequestDate),
		m.Topic,
		m.Description,
		m.Currency,
		m.Amount,
		request.Status(m.Status),
		m.RequestedBy,
		m.ProcessedBy,
		m.CreatedAt.UTC(),
		processedAt,
	)
}

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UserToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Username,
		m.PasswordHash,
		m.Email,
		authorization.UserRole(m.Role),
		m.CreatedAt.UTC(),
		m.UpdatedAt.UTC(),
	)
}
