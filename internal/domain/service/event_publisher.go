package service

import (
	"context"
)

// Notification event kinds routed by the geo worker.
const (
	// EventKindListingCreated fans out to nearby seekers.
	EventKindListingCreated = "listing_created"
	// EventKindSeekerLocation fans out to owners near the seeker.
	EventKindSeekerLocation = "seeker_location"
)

// NotificationEvent represents a trigger event to be processed by the geo worker.
type NotificationEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Kind      string  `json:"kind"`
	ListingID string  `json:"listing_id,omitempty"` // Set for listing_created events
	Title     string  `json:"title,omitempty"`
	Rent      float64 `json:"rent,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km,omitempty"` // Set for seeker_location events
}

// EventPublisher defines the interface for publishing trigger events to a
// message queue for asynchronous fan-out.
type EventPublisher interface {
	// PublishNotificationEvent publishes a trigger event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
