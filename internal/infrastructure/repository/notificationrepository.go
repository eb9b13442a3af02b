package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/mappers"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
	"github.com/corpit/licensedesk/internal/shared/db"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Record(ctx context.Context, n *notification.RenewalNotification) error {
	model := mappers.RenewalNotificationToModel(n)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record renewal notification: %w", err)
	}
	n.SetID(model.ID)
	return nil
}

// ListByLicenseID returns attempts newest first.
func (r *NotificationRepository) ListByLicenseID(ctx context.Context, licenseID uint) ([]*notification.RenewalNotification, error) {
	var rows []models.RenewalNotificationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("license_id = ?", licenseID).
		Order("notified_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list renewal notifications: %w", err)
	}

	out := make([]*notification.RenewalNotification, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.RenewalNotificationToDomain(&rows[i]))
	}
	return out, nil
}

func (r *NotificationRepository) SentSince(ctx context.Context, licenseID uint, notificationType notification.Type, since time.Time) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RenewalNotificationModel{}).
		Where("license_id = ? AND notification_type = ? AND (sent = ? OR unconfirmed = ?) AND notified_at >= ?",
			licenseID, string(notificationType), true, true, since.UTC()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check renewal notifications: %w", err)
	}
	return count > 0, nil
}
