package models

import (
	"time"

	"github.com/corpit/licensedesk/internal/shared/constants"
)

// UserModel is the persistence shape of an account.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:user;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
