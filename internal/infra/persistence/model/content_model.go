package model

import (
	"time"

	"github.com/google/uuid"
)

// TattooModel mirrors the 'tattoos' table. Tags are stored as a JSON column.
type TattooModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	ImageURL        string    `gorm:"type:text;not null"`
	ArtistID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtistName      string    `gorm:"type:varchar(100)"`
	ArtistAvatarURL string    `gorm:"type:text"`
	Style           string    `gorm:"type:varchar(100)"`
	Description     string    `gorm:"type:text"`
	Tags            []string  `gorm:"serializer:json"`
	ArtistType      string    `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TattooModel) TableName() string {
	return "tattoos"
}

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtistName    string    `gorm:"type:varchar(100)"`
	Title         string    `gorm:"type:varchar(255);not null"`
	ImageURL      string    `gorm:"type:text"`
	OriginalPrice int
	DiscountPrice int
	StartDate     time.Time
	EndDate       time.Time
	Description   string    `gorm:"type:text"`
	ArtistType    string    `gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// ReviewModel mirrors the 'reviews' table. The (tattoo_id, reviewer_id) pair
// is unique so one reviewer cannot review the same tattoo twice.
type ReviewModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	TattooID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_tattoo_reviewer"`
	ReviewerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_tattoo_reviewer"`
	ReviewerName   string    `gorm:"type:varchar(100)"`
	ReviewerAvatar string    `gorm:"type:text"`
	Rating         int       `gorm:"not null"`
	Comment        string    `gorm:"type:text"`
	ImageURL       string    `gorm:"type:text"`
	ArtistID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtistName     string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
