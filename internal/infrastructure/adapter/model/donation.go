package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Donation is the database model of a donation pledge
type Donation struct {
	ID             uint64            `gorm:"primaryKey;autoIncrement"`
	Code           string            `gorm:"uniqueIndex;not null;size:64"`
	Name           string            `gorm:"not null;size:255"`
	Amount         decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Cadence        string            `gorm:"not null;size:20"`
	DonorName      string            `gorm:"not null;size:255"`
	Email          string            `gorm:"not null;size:255;index"`
	Comment        string            `gorm:"type:text"`
	SubmittedAt    time.Time         `gorm:"not null"`
	PaymentStatus  string            `gorm:"not null;size:20;default:pending;index"`
	TransactionID  *int64            `gorm:"index"`
	PaymentToken   *string           `gorm:"size:255"`
	PaymentDetails datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt      time.Time         `gorm:"not null"`
	UpdatedAt      time.Time         `gorm:"not null"`
}

// TableName specifies the table name for Donation
func (Donation) TableName() string {
	return "donations"
}
