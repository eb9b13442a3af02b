package mappers

import (
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
)

func RenewalNotificationToModel(n *notification.RenewalNotification) *models.RenewalNotificationModel {
	return &models.RenewalNotificationModel{
		ID:               n.ID(),
		LicenseID:        n.LicenseID(),
		CustomerID:       n.CustomerID(),
		ProductID:        n.ProductID(),
		NotificationType: string(n.NotificationType()),
		Recipient:        n.Recipient(),
		Sent:             n.Sent(),
		Unconfirmed:      n.Unconfirmed(),
		ErrorMessage:     n.ErrorMessage(),
		NotifiedAt:       n.NotifiedAt(),
	}
}

func RenewalNotificationToDomain(m *models.RenewalNotificationModel) *notification.RenewalNotification {
	return notification.ReconstructRenewalNotification(
		m.ID,
		m.LicenseID,
		m.CustomerID,
		m.ProductID,
		notification.Type(m.NotificationType),
		m.Recipient,
		m.Sent,
		m.Unconfirmed,
		m.ErrorMessage,
		m.NotifiedAt.UTC(),
	)
}
