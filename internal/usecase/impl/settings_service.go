package impl

import (
	"context"
	"log/slog"

	"homeradar/config"
	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/repository"
	"homeradar/internal/domain/service"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
)

type settingsService struct {
	recipientRepo repository.RecipientRepository
	tokenUsecase  usecase.PushTokenUsecase
	publisher     service.EventPublisher
	notification  *config.NotificationConfig
	logger        *slog.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(
	recipientRepo repository.RecipientRepository,
	tokenUsecase usecase.PushTokenUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		recipientRepo: recipientRepo,
		tokenUsecase:  tokenUsecase,
		publisher:     publisher,
		notification:  cfg.Notification,
		logger:        logger,
	}
}

// SaveSettings validates and upserts a user's notification settings.
func (s *settingsService) SaveSettings(
	ctx context.Context,
	userID uuid.UUID,
	input usecase.SettingsInput,
	platform service.PushPlatform,
) (*entity.Recipient, error) {
	if !input.Role.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be owner or seeker")
	}
	if !validCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	radius := input.RadiusKm
	if radius == 0 {
		radius = s.notification.DefaultRadiusKm
	}
	if radius < s.notification.MinRadiusKm || radius > s.notification.MaxRadiusKm {
		return nil, domainerrors.ErrRadiusOutOfRange
	}

	recipient := &entity.Recipient{
		UserID:    userID,
		Role:      input.Role,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		RadiusKm:  radius,
		Enabled:   input.Enabled,
	}

	// Token acquisition is degradable: a nil token saves a row that simply
	// receives no pushes until the next settings save.
	if input.Enabled {
		recipient.PushToken = s.tokenUsecase.FreshPushToken(ctx, platform)
	}

	if err := s.recipientRepo.UpsertSettings(ctx, recipient); err != nil {
		return nil, err
	}

	// An enabled, addressable seeker announces themselves to nearby owners.
	// The fan-out is best-effort; a publish failure never fails the save.
	if input.Role == entity.RoleSeeker && recipient.Addressable() {
		event := &service.NotificationEvent{
			Kind:      service.EventKindSeekerLocation,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			RadiusKm:  radius,
		}
		if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
			s.logger.Warn("failed to publish seeker location event",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return recipient, nil
}

// GetSettings retrieves a user's settings row.
func (s *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.Recipient, error) {
	return s.recipientRepo.FindByUser(ctx, userID)
}

// UpdateLocation moves a user's anchor coordinate.
func (s *settingsService) UpdateLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	if !validCoordinate(latitude, longitude) {
		return domainerrors.ErrInvalidCoordinates
	}

	return s.recipientRepo.UpdateAnchor(ctx, userID, latitude, longitude)
}

// DisableNotifications opts a user out without deleting their row.
func (s *settingsService) DisableNotifications(ctx context.Context, userID uuid.UUID) error {
	return s.recipientRepo.Disable(ctx, userID)
}

func validCoordinate(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
