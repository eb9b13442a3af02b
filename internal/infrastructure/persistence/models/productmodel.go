package models

import (
	"time"

	"github.com/corpit/licensedesk/internal/shared/constants"
)

type ProductModel struct {
	ID                    uint   `gorm:"primaryKey"`
	Name                  string `gorm:"size:100;not null;uniqueIndex"`
	ProductType           string `gorm:"size:20;not null;index"`
	LicenseUnit           string `gorm:"size:20;not null"`
	DefaultValidityMonths int    `gorm:"not null;default:12"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}
