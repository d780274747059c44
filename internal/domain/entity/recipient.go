// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipient represents a user's proximity-notification settings: whether they
// opted in, the anchor coordinate their radius is measured from, and the push
// address their device is reachable at.
type Recipient struct {
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user these settings belong to.
	Role      Role      `json:"role"`       // Marketplace role (owner, seeker).
	PushToken *string   `json:"push_token"` // Relay push token; nil while no device is addressable.
	Latitude  float64   `json:"latitude"`   // Anchor coordinate latitude.
	Longitude float64   `json:"longitude"`  // Anchor coordinate longitude.
	RadiusKm  float64   `json:"radius_km"`  // Chosen search radius in kilometers.
	Enabled   bool      `json:"enabled"`    // Whether proximity notifications are on.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Addressable reports whether the recipient can currently receive pushes.
// A disabled row or a row without a token must never be fanned out to.
func (r *Recipient) Addressable() bool {
	return r.Enabled && r.PushToken != nil && *r.PushToken != ""
}

// NearbyRecipient is a proximity-query result row: an addressable recipient
// together with the distance the storage layer computed. That distance is the
// single source of truth for everything rendered downstream.
type NearbyRecipient struct {
	UserID     uuid.UUID `json:"user_id"`
	PushToken  string    `json:"push_token"`
	DistanceKm float64   `json:"distance_km"`
}
