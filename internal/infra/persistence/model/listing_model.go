package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
// It represents a rental property published by an owner.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Rent        float64   `gorm:"type:decimal(12,2);not null"`
	Address     string    `gorm:"type:text;not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	// Note: location GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	Status    string `gorm:"type:text;not null;default:'active';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// SavedListingModel is the GORM-specific struct for the 'saved_listings' table.
// It records a seeker bookmarking a listing.
type SavedListingModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	ListingID uuid.UUID `gorm:"type:uuid;primary_key;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedListingModel) TableName() string {
	return "saved_listings"
}
