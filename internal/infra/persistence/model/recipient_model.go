package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettingModel is the GORM-specific struct for the 'notification_settings' table.
// It holds one row per user: delivery preferences plus the anchor location used
// for proximity matching.
type NotificationSettingModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Role      string    `gorm:"type:text;not null;index"`
	PushToken *string   `gorm:"type:text"`
	Enabled   bool      `gorm:"not null;default:true"`
	RadiusKm  float64   `gorm:"type:decimal(5,2);not null;default:15.0"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	// Note: location GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationSettingModel) TableName() string {
	return "notification_settings"
}
