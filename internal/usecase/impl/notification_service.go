package impl

import (
	"context"
	"log/slog"
	"time"

	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/repository"
	"homeradar/internal/domain/service"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Radius bounds accepted by the dispatcher, same range the settings layer
// enforces.
const (
	minFanoutRadiusKm = 5.0
	maxFanoutRadiusKm = 50.0
)

type notificationService struct {
	recipientRepo   repository.RecipientRepository
	deliveryLogRepo repository.DeliveryLogRepository
	pushRelay       service.PushRelay
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	recipientRepo repository.RecipientRepository,
	deliveryLogRepo repository.DeliveryLogRepository,
	pushRelay service.PushRelay,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		recipientRepo:   recipientRepo,
		deliveryLogRepo: deliveryLogRepo,
		pushRelay:       pushRelay,
		logger:          logger,
	}
}

// NotifyNearbySeekers fans a new-listing notification out to every enabled
// seeker whose own configured radius covers the listing's coordinate.
func (s *notificationService) NotifyNearbySeekers(ctx context.Context, event *entity.ListingEvent) (*usecase.DispatchResult, error) {
	if !validCoordinate(event.Latitude, event.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	recipients, err := s.recipientRepo.FindNearbySeekers(ctx, event.Latitude, event.Longitude)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby seekers")
	}

	listingID := event.ListingID
	messages := composeNewListing(event, recipients)

	return s.dispatch(ctx, messages, recipients, entity.NotificationKindNewListing, &listingID)
}

// NotifyNearbyOwners fans a seeker notification out to every enabled owner
// with an active listing within radiusKm of the seeker's anchor.
func (s *notificationService) NotifyNearbyOwners(ctx context.Context, seekerLat, seekerLon, radiusKm float64) (*usecase.DispatchResult, error) {
	if !validCoordinate(seekerLat, seekerLon) {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if radiusKm < minFanoutRadiusKm || radiusKm > maxFanoutRadiusKm {
		return nil, domainerrors.ErrRadiusOutOfRange
	}

	recipients, err := s.recipientRepo.FindNearbyOwners(ctx, seekerLat, seekerLon, radiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby owners")
	}

	messages := composeNearbySeeker(recipients)

	return s.dispatch(ctx, messages, recipients, entity.NotificationKindNearbySeeker, nil)
}

// dispatch submits messages to the relay in sequential batches. A failed batch
// is recorded and skipped; the remaining batches still go out. Delivery logs
// are written right after each accepted batch, and log failures never affect
// the result.
func (s *notificationService) dispatch(
	ctx context.Context,
	messages []service.PushMessage,
	recipients []*entity.NearbyRecipient,
	kind string,
	listingID *uuid.UUID,
) (*usecase.DispatchResult, error) {
	if len(messages) == 0 {
		return &usecase.DispatchResult{Success: true, Count: 0}, nil
	}

	var outcomes []usecase.BatchOutcome

	for i := 0; i < len(messages); i += service.RelayBatchLimit {
		end := i + service.RelayBatchLimit
		if end > len(messages) {
			end = len(messages)
		}

		outcome := usecase.BatchOutcome{
			BatchIndex: len(outcomes),
			Size:       end - i,
		}

		if err := s.pushRelay.SendBatch(ctx, messages[i:end]); err != nil {
			outcome.Err = err
			s.logger.Warn("push relay batch failed",
				slog.Int("batch_index", outcome.BatchIndex),
				slog.Int("size", outcome.Size),
				slog.Any("error", err),
			)
			outcomes = append(outcomes, outcome)

			continue
		}
		outcomes = append(outcomes, outcome)

		sentAt := time.Now()
		deliveryLogs := make([]*entity.DeliveryLog, 0, end-i)
		for _, recipient := range recipients[i:end] {
			deliveryLogs = append(deliveryLogs, &entity.DeliveryLog{
				ID:        uuid.New(),
				UserID:    recipient.UserID,
				ListingID: listingID,
				Kind:      kind,
				SentAt:    sentAt,
			})
		}

		if err := s.deliveryLogRepo.BatchCreate(ctx, deliveryLogs); err != nil {
			s.logger.Warn("failed to write delivery logs",
				slog.Int("batch_index", outcome.BatchIndex),
				slog.Int("count", len(deliveryLogs)),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.DispatchResult{
		Success: true,
		Count:   len(messages),
		Batches: outcomes,
	}, nil
}
