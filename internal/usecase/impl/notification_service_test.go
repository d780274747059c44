package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/service"
	mockRepo "homeradar/internal/mocks/repository"
	mockSvc "homeradar/internal/mocks/service"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockRecipientRepository,
	*mockRepo.MockDeliveryLogRepository,
	*mockSvc.MockPushRelay,
) {
	recipientRepo := mockRepo.NewMockRecipientRepository(t)
	deliveryLogRepo := mockRepo.NewMockDeliveryLogRepository(t)
	pushRelay := mockSvc.NewMockPushRelay(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(recipientRepo, deliveryLogRepo, pushRelay, logger)

	return svc, recipientRepo, deliveryLogRepo, pushRelay
}

func makeSeekers(n int) []*entity.NearbyRecipient {
	recipients := make([]*entity.NearbyRecipient, 0, n)
	for i := range n {
		recipients = append(recipients, &entity.NearbyRecipient{
			UserID:     uuid.New(),
			PushToken:  fmt.Sprintf("ExponentPushToken[seeker-%d]", i),
			DistanceKm: float64(i) * 0.1,
		})
	}

	return recipients
}

func TestNotificationService_NotifyNearbySeekers_Success(t *testing.T) {
	svc, recipientRepo, deliveryLogRepo, pushRelay := createTestNotificationService(t)

	ctx := context.Background()
	event := &entity.ListingEvent{
		ListingID: uuid.New(),
		Title:     "2BHK in Koramangala",
		Rent:      25000,
		Latitude:  12.9352,
		Longitude: 77.6245,
	}
	recipients := makeSeekers(2)

	recipientRepo.EXPECT().
		FindNearbySeekers(ctx, event.Latitude, event.Longitude).
		Return(recipients, nil)

	pushRelay.EXPECT().
		SendBatch(ctx, mock.Anything).
		Run(func(_ context.Context, messages []service.PushMessage) {
			require.Len(t, messages, 2)
			assert.Equal(t, recipients[0].PushToken, messages[0].To)
			assert.Equal(t, "New home near you!", messages[0].Title)
			assert.Equal(t, "default", messages[0].Sound)
			assert.Equal(t, event.ListingID.String(), messages[0].Data["listingId"])
		}).
		Return(nil)

	deliveryLogRepo.EXPECT().
		BatchCreate(ctx, mock.Anything).
		Run(func(_ context.Context, logs []*entity.DeliveryLog) {
			require.Len(t, logs, 2)
			assert.Equal(t, recipients[0].UserID, logs[0].UserID)
			assert.Equal(t, entity.NotificationKindNewListing, logs[0].Kind)
			require.NotNil(t, logs[0].ListingID)
			assert.Equal(t, event.ListingID, *logs[0].ListingID)
		}).
		Return(nil)

	result, err := svc.NotifyNearbySeekers(ctx, event)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Batches, 1)
	assert.NoError(t, result.Batches[0].Err)
}

func TestNotificationService_NotifyNearbySeekers_NoRecipients(t *testing.T) {
	svc, recipientRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	event := &entity.ListingEvent{ListingID: uuid.New(), Latitude: 12.9, Longitude: 77.6}

	recipientRepo.EXPECT().
		FindNearbySeekers(ctx, event.Latitude, event.Longitude).
		Return([]*entity.NearbyRecipient{}, nil)

	result, err := svc.NotifyNearbySeekers(ctx, event)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Batches)
}

func TestNotificationService_NotifyNearbySeekers_QueryFailure(t *testing.T) {
	svc, recipientRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	event := &entity.ListingEvent{ListingID: uuid.New(), Latitude: 12.9, Longitude: 77.6}

	recipientRepo.EXPECT().
		FindNearbySeekers(ctx, event.Latitude, event.Longitude).
		Return(nil, errors.New("connection refused"))

	result, err := svc.NotifyNearbySeekers(ctx, event)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find nearby seekers")
}

func TestNotificationService_NotifyNearbySeekers_SplitsIntoBatches(t *testing.T) {
	svc, recipientRepo, deliveryLogRepo, pushRelay := createTestNotificationService(t)

	ctx := context.Background()
	event := &entity.ListingEvent{ListingID: uuid.New(), Title: "Studio", Rent: 9000, Latitude: 12.9, Longitude: 77.6}
	recipients := makeSeekers(250)

	recipientRepo.EXPECT().
		FindNearbySeekers(ctx, event.Latitude, event.Longitude).
		Return(recipients, nil)

	var batchSizes []int
	pushRelay.EXPECT().
		SendBatch(ctx, mock.Anything).
		Run(func(_ context.Context, messages []service.PushMessage) {
			batchSizes = append(batchSizes, len(messages))
		}).
		Return(nil)

	var logSizes []int
	deliveryLogRepo.EXPECT().
		BatchCreate(ctx, mock.Anything).
		Run(func(_ context.Context, logs []*entity.DeliveryLog) {
			logSizes = append(logSizes, len(logs))
		}).
		Return(nil)

	result, err := svc.NotifyNearbySeekers(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 250, result.Count)
	assert.Equal(t, []int{100, 100, 50}, batchSizes)
	assert.Equal(t, []int{100, 100, 50}, logSizes)
	require.Len(t, result.Batches, 3)
	for _, outcome := range result.Batches {
		assert.NoError(t, outcome.Err)
	}
}

func TestNotificationService_NotifyNearbySeekers_PartialBatchFailure(t *testing.T) {
	svc, recipientRepo, deliveryLogRepo, pushRelay := createTestNotificationService(t)

	ctx := context.Background()
	event := &entity.ListingEvent{ListingID: uuid.New(), Title: "1BHK", Rent: 12000, Latitude: 12.9, Longitude: 77.6}
	recipients := makeSeekers(250)

	recipientRepo.EXPECT().
		FindNearbySeekers(ctx, event.Latitude, event.Longitude).
		Return(recipients, nil)

	callCount := 0
	pushRelay.EXPECT().
		SendBatch(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []service.PushMessage) error {
			callCount++
			if callCount == 2 {
				return errors.New("relay unavailable")
			}

			return nil
		})

	// Logs cover only the two accepted batches.
	var logSizes []int
	deliveryLogRepo.EXPECT().
		BatchCreate(ctx, mock.Anything).
		Run(func(_ context.Context, logs []*entity.DeliveryLog) {
			logSizes = append(logSizes, len(logs))
		}).
		Return(nil)

	result, err := svc.NotifyNearbySeekers(ctx, event)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 250, result.Count)
	assert.Equal(t, 3, callCount)
	assert.Equal(t, []int{100, 50}, logSizes)
	require.Len(t, result.Batches, 3)
	assert.NoError(t, result.Batches[0].Err)
	assert.Error(t, result.Batches[1].Err)
	assert.NoError(t, result.Batches[2].Err)
}

func TestNotificationService_NotifyNearbySeekers_DeliveryLogFailureIgnored(t *testing.T) {
	svc, recipientRepo, deliveryLogRepo, pushRelay := createTestNotificationService(t)

	ctx := context.Background()
	event := &entity.ListingEvent{ListingID: uuid.New(), Title: "Villa", Rent: 80000, Latitude: 12.9, Longitude: 77.6}

	recipientRepo.EXPECT().
		FindNearbySeekers(ctx, event.Latitude, event.Longitude).
		Return(makeSeekers(1), nil)
	pushRelay.EXPECT().SendBatch(ctx, mock.Anything).Return(nil)
	deliveryLogRepo.EXPECT().BatchCreate(ctx, mock.Anything).Return(errors.New("insert failed"))

	result, err := svc.NotifyNearbySeekers(ctx, event)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Count)
}

func TestNotificationService_NotifyNearbyOwners_Success(t *testing.T) {
	svc, recipientRepo, deliveryLogRepo, pushRelay := createTestNotificationService(t)

	ctx := context.Background()
	owner := &entity.NearbyRecipient{
		UserID:     uuid.New(),
		PushToken:  "ExponentPushToken[owner-1]",
		DistanceKm: 3.27,
	}

	recipientRepo.EXPECT().
		FindNearbyOwners(ctx, 12.9352, 77.6245, 10.0).
		Return([]*entity.NearbyRecipient{owner}, nil)

	pushRelay.EXPECT().
		SendBatch(ctx, mock.Anything).
		Run(func(_ context.Context, messages []service.PushMessage) {
			require.Len(t, messages, 1)
			assert.Equal(t, "Seeker Looking Nearby!", messages[0].Title)
			assert.Equal(t, "Someone is looking for a property 3.3 km from your listing", messages[0].Body)
			assert.Equal(t, 3.27, messages[0].Data["distance"])
		}).
		Return(nil)

	deliveryLogRepo.EXPECT().
		BatchCreate(ctx, mock.Anything).
		Run(func(_ context.Context, logs []*entity.DeliveryLog) {
			require.Len(t, logs, 1)
			assert.Equal(t, entity.NotificationKindNearbySeeker, logs[0].Kind)
			assert.Nil(t, logs[0].ListingID)
		}).
		Return(nil)

	result, err := svc.NotifyNearbyOwners(ctx, 12.9352, 77.6245, 10.0)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestNotificationService_NotifyNearbySeekers_RejectsBadCoordinates(t *testing.T) {
	svc, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	event := &entity.ListingEvent{
		ListingID: uuid.New(),
		Title:     "Phantom flat",
		Rent:      15000,
		Latitude:  -95,
		Longitude: 181,
	}

	// No recipient query and no relay traffic for an unusable event.
	result, err := svc.NotifyNearbySeekers(ctx, event)

	assert.Nil(t, result)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestNotificationService_NotifyNearbyOwners_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		radiusKm float64
		wantErr  error
	}{
		{"latitude out of range", 999, 400, 10, domainerrors.ErrInvalidCoordinates},
		{"longitude out of range", 12.9, -181, 10, domainerrors.ErrInvalidCoordinates},
		{"radius too large", 12.9, 77.6, 400, domainerrors.ErrRadiusOutOfRange},
		{"radius too small", 12.9, 77.6, 4.9, domainerrors.ErrRadiusOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := createTestNotificationService(t)

			result, err := svc.NotifyNearbyOwners(context.Background(), tt.lat, tt.lon, tt.radiusKm)

			assert.Nil(t, result)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNotificationService_NotifyNearbyOwners_QueryFailure(t *testing.T) {
	svc, recipientRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	recipientRepo.EXPECT().
		FindNearbyOwners(ctx, 12.9, 77.6, 15.0).
		Return(nil, errors.New("timeout"))

	result, err := svc.NotifyNearbyOwners(ctx, 12.9, 77.6, 15.0)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find nearby owners")
}
