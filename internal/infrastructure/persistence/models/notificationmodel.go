package models

import (
	"time"

	"github.com/corpit/licensedesk/internal/shared/constants"
)

type RenewalNotificationModel struct {
	ID               uint      `gorm:"primaryKey"`
	LicenseID        uint      `gorm:"not null;index:idx_notifications_license_type"`
	CustomerID       uint      `gorm:"not null"`
	ProductID        uint      `gorm:"not null"`
	NotificationType string    `gorm:"size:20;not null;index:idx_notifications_license_type"`
	Recipient        string    `gorm:"size:255;not null"`
	Sent             bool      `gorm:"not null"`
	Unconfirmed      bool      `gorm:"not null;default:false"`
	ErrorMessage     string    `gorm:"type:text"`
	NotifiedAt       time.Time `gorm:"not null;index:idx_notifications_license_type"`
}

func (RenewalNotificationModel) TableName() string {
	return constants.TableRenewalNotifications
}
