package model

import (
	"time"

	"github.com/google/uuid"
)

// ArtistModel mirrors the 'artists' table. The subscription state is
// flattened into tier and expiry columns.
type ArtistModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	AvatarURL        string    `gorm:"type:text"`
	CoverImageURL    string    `gorm:"type:text"`
	Bio              string    `gorm:"type:text"`
	Specialty        string    `gorm:"type:varchar(100)"`
	Rating           float64
	ReviewCount      int
	Location         string `gorm:"type:varchar(255)"`
	ArtistType       string `gorm:"type:varchar(16);not null"`
	WhatsApp         string `gorm:"type:text"`
	KakaoTalk        string `gorm:"type:text"`
	SubscriptionTier string `gorm:"type:varchar(16);not null"`
	SubscriptionEnd  *time.Time
	Status           string `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtistModel) TableName() string {
	return "artists"
}
