package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/corpit/licensedesk/internal/shared/constants"
)

type RequestModel struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	RequestDate datatypes.Date  `gorm:"type:date;not null"`
	Topic       string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text;not null"`
	Currency    string          `gorm:"size:3;not null;default:''"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"size:20;not null;index"`
	RequestedBy uint            `gorm:"not null;index"`
	ProcessedBy string          `gorm:"size:50"`
	CreatedAt   time.Time
	ProcessedAt *time.Time `gorm:"index"`
}

func (RequestModel) TableName() string {
	return constants.TableRequests
}
