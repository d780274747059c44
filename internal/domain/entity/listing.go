package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	// ListingStatusActive is visible in browse/map views and triggers fan-out.
	ListingStatusActive ListingStatus = "active"
	// ListingStatusRented is kept for the owner's records but hidden from seekers.
	ListingStatusRented ListingStatus = "rented"
	// ListingStatusInactive is paused by the owner.
	ListingStatusInactive ListingStatus = "inactive"
)

// Listing represents a rental property published by an owner.
type Listing struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Rent        float64       `json:"rent"` // Monthly rent in rupees.
	Address     string        `json:"address"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ListingEvent is the ephemeral trigger payload for a newly created active
// listing. It carries only what the fan-out needs; the listing row itself is
// owned by the listing repository.
type ListingEvent struct {
	ListingID uuid.UUID `json:"listing_id"`
	Title     string    `json:"title"`
	Rent      float64   `json:"rent"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// SavedListing is a seeker's bookmark on a listing.
type SavedListing struct {
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}
