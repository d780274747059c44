// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"homeradar/internal/domain/entity"
	"homeradar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for recipient persistence.
var (
	// ErrRecipientNotFound is returned when no settings row exists for a user.
	ErrRecipientNotFound = errors.New("recipient not found")
)

// RecipientRepository defines the interface for notification-settings rows and
// the proximity queries built on them.
type RecipientRepository interface {
	// UpsertSettings creates or replaces the settings row for a user.
	// Rows are keyed by user ID; saving settings never creates duplicates.
	UpsertSettings(ctx context.Context, recipient *entity.Recipient) error

	// FindByUser retrieves the settings row for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Recipient, error)

	// UpdateAnchor moves a user's anchor coordinate, preserving the rest of
	// the row (radius, enabled flag, token).
	UpdateAnchor(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error

	// Disable turns off notifications for a user. Settings rows are never
	// hard-deleted, only disabled.
	Disable(ctx context.Context, userID uuid.UUID) error

	// FindNearbySeekers returns every enabled seeker with a push token whose
	// own configured radius covers the given origin. Each seeker's stored
	// radius is the matching threshold; the boundary is inclusive. The
	// returned distance is the storage layer's great-circle distance in km.
	FindNearbySeekers(ctx context.Context, originLat, originLon float64) ([]*entity.NearbyRecipient, error)

	// FindNearbyOwners returns every enabled owner with a push token who has
	// at least one active listing within radiusKm of the given origin. The
	// returned distance is to the owner's nearest matching listing.
	FindNearbyOwners(ctx context.Context, originLat, originLon, radiusKm float64) ([]*entity.NearbyRecipient, error)
}
