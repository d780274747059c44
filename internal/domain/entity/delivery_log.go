package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds carried in the push payload's type discriminant and in
// the delivery audit log.
const (
	// NotificationKindNewListing alerts a seeker about a listing near them.
	NotificationKindNewListing = "new_listing"
	// NotificationKindNearbySeeker alerts an owner about a seeker near a listing.
	NotificationKindNearbySeeker = "nearby_seeker"
)

// DeliveryLog is a best-effort audit record for one submitted notification.
// Writing it must never influence the outcome of the dispatch that produced it.
type DeliveryLog struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ListingID *uuid.UUID `json:"listing_id"` // nil for seeker-direction notifications.
	Kind      string     `json:"kind"`
	SentAt    time.Time  `json:"sent_at"`
}
