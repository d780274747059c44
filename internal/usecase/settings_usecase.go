package usecase

import (
	"context"

	"homeradar/internal/domain/entity"
	"homeradar/internal/domain/service"

	"github.com/google/uuid"
)

// SettingsInput carries the notification preferences a user submits.
type SettingsInput struct {
	Role      entity.Role `json:"role"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	RadiusKm  float64     `json:"radius_km"`
	Enabled   bool        `json:"enabled"`
}

// SettingsUsecase defines the interface for notification-settings use cases.
type SettingsUsecase interface {
	// SaveSettings validates and upserts a user's settings row. When the user
	// opts in, a fresh push token is acquired through platform; acquisition
	// failures degrade the row to tokenless rather than failing the save.
	// Saving an enabled seeker row also triggers the nearby-owner fan-out,
	// best-effort.
	SaveSettings(ctx context.Context, userID uuid.UUID, input SettingsInput, platform service.PushPlatform) (*entity.Recipient, error)

	// GetSettings retrieves a user's settings row.
	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.Recipient, error)

	// UpdateLocation moves a user's anchor coordinate, preserving the rest of
	// the row.
	UpdateLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error

	// DisableNotifications opts a user out without deleting their row.
	DisableNotifications(ctx context.Context, userID uuid.UUID) error
}
