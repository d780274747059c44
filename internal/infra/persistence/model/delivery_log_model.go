package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryLogModel is the GORM-specific struct for the 'notification_deliveries' table.
// It records one row per push message handed to the relay.
type DeliveryLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ListingID *uuid.UUID `gorm:"type:uuid;index"`
	Kind      string     `gorm:"type:text;not null"`
	SentAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "notification_deliveries"
}
