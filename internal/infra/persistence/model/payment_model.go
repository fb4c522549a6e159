package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the append-only 'payments' ledger table.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtistName    string    `gorm:"type:varchar(100)"`
	PlanTitle     string    `gorm:"type:varchar(100);not null"`
	Amount        int       `gorm:"not null"`
	PaymentDate   time.Time `gorm:"index"`
	NewExpiryDate time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
