package models

import (
	"time"

	"github.com/corpit/licensedesk/internal/shared/constants"
)

type CustomerModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null;uniqueIndex"`
	ContactPerson string `gorm:"size:100;not null"`
	Email         string `gorm:"size:255;not null"`
	Phone         string `gorm:"size:20;not null"`
	Location      string `gorm:"size:100;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
