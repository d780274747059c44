// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"

	"homeradar/internal/domain/entity"
)

// BatchOutcome records the result of one relay batch within a dispatch.
type BatchOutcome struct {
	BatchIndex int   `json:"batch_index"`
	Size       int   `json:"size"`
	Err        error `json:"-"`
}

// DispatchResult summarizes one fan-out run. Count is the number of messages
// handed to the relay, whether or not their batch succeeded; Batches carries
// the per-batch outcomes so callers can see partial failures.
type DispatchResult struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Batches []BatchOutcome `json:"-"`
}

// NotificationUsecase defines the interface for proximity fan-out use cases.
type NotificationUsecase interface {
	// NotifyNearbySeekers fans a new-listing notification out to every enabled
	// seeker whose own radius covers the listing's coordinate.
	NotifyNearbySeekers(ctx context.Context, event *entity.ListingEvent) (*DispatchResult, error)

	// NotifyNearbyOwners fans a seeker-looking-nearby notification out to every
	// enabled owner with an active listing within radiusKm of the seeker.
	NotifyNearbyOwners(ctx context.Context, seekerLat, seekerLon, radiusKm float64) (*DispatchResult, error)
}
