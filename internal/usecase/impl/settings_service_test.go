package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homeradar/config"
	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	domainservice "homeradar/internal/domain/service"
	mockRepo "homeradar/internal/mocks/repository"
	mockSvc "homeradar/internal/mocks/service"
	mockUC "homeradar/internal/mocks/usecase"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSettingsService(t *testing.T) (
	usecase.SettingsUsecase,
	*mockRepo.MockRecipientRepository,
	*mockUC.MockPushTokenUsecase,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockPushPlatform,
) {
	recipientRepo := mockRepo.NewMockRecipientRepository(t)
	tokenUsecase := mockUC.NewMockPushTokenUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	platform := mockSvc.NewMockPushPlatform(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSettingsService(recipientRepo, tokenUsecase, publisher, &config.Config{
		Notification: &config.NotificationConfig{
			MinRadiusKm:     5,
			MaxRadiusKm:     50,
			DefaultRadiusKm: 15,
		},
	}, logger)

	return svc, recipientRepo, tokenUsecase, publisher, platform
}

func TestSettingsService_SaveSettings_Owner(t *testing.T) {
	svc, recipientRepo, tokenUsecase, _, platform := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := "ExponentPushToken[owner]"

	tokenUsecase.EXPECT().FreshPushToken(ctx, platform).Return(&token)
	recipientRepo.EXPECT().
		UpsertSettings(ctx, mock.AnythingOfType("*entity.Recipient")).
		Return(nil)

	recipient, err := svc.SaveSettings(ctx, userID, usecase.SettingsInput{
		Role:      entity.RoleOwner,
		Latitude:  12.9352,
		Longitude: 77.6245,
		RadiusKm:  10,
		Enabled:   true,
	}, platform)

	require.NoError(t, err)
	assert.Equal(t, userID, recipient.UserID)
	assert.Equal(t, entity.RoleOwner, recipient.Role)
	assert.Equal(t, 10.0, recipient.RadiusKm)
	require.NotNil(t, recipient.PushToken)
	assert.Equal(t, token, *recipient.PushToken)
}

func TestSettingsService_SaveSettings_SeekerPublishesLocationEvent(t *testing.T) {
	svc, recipientRepo, tokenUsecase, publisher, platform := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := "ExponentPushToken[seeker]"

	tokenUsecase.EXPECT().FreshPushToken(ctx, platform).Return(&token)
	recipientRepo.EXPECT().
		UpsertSettings(ctx, mock.AnythingOfType("*entity.Recipient")).
		Return(nil)

	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *domainservice.NotificationEvent) {
			assert.Equal(t, domainservice.EventKindSeekerLocation, event.Kind)
			assert.Equal(t, 12.9352, event.Latitude)
			assert.Equal(t, 77.6245, event.Longitude)
			assert.Equal(t, 20.0, event.RadiusKm)
		}).
		Return(nil)

	recipient, err := svc.SaveSettings(ctx, userID, usecase.SettingsInput{
		Role:      entity.RoleSeeker,
		Latitude:  12.9352,
		Longitude: 77.6245,
		RadiusKm:  20,
		Enabled:   true,
	}, platform)

	require.NoError(t, err)
	assert.True(t, recipient.Addressable())
}

func TestSettingsService_SaveSettings_PublishFailureTolerated(t *testing.T) {
	svc, recipientRepo, tokenUsecase, publisher, platform := createTestSettingsService(t)

	ctx := context.Background()
	token := "ExponentPushToken[seeker]"

	tokenUsecase.EXPECT().FreshPushToken(ctx, platform).Return(&token)
	recipientRepo.EXPECT().
		UpsertSettings(ctx, mock.AnythingOfType("*entity.Recipient")).
		Return(nil)
	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.Anything).
		Return(errors.New("broker down"))

	_, err := svc.SaveSettings(ctx, uuid.New(), usecase.SettingsInput{
		Role:      entity.RoleSeeker,
		Latitude:  12.9,
		Longitude: 77.6,
		RadiusKm:  5,
		Enabled:   true,
	}, platform)

	require.NoError(t, err)
}

func TestSettingsService_SaveSettings_DisabledSkipsTokenAndEvent(t *testing.T) {
	svc, recipientRepo, _, _, platform := createTestSettingsService(t)

	ctx := context.Background()

	recipientRepo.EXPECT().
		UpsertSettings(ctx, mock.AnythingOfType("*entity.Recipient")).
		Return(nil)

	recipient, err := svc.SaveSettings(ctx, uuid.New(), usecase.SettingsInput{
		Role:      entity.RoleSeeker,
		Latitude:  12.9,
		Longitude: 77.6,
		RadiusKm:  5,
		Enabled:   false,
	}, platform)

	require.NoError(t, err)
	assert.Nil(t, recipient.PushToken)
	assert.False(t, recipient.Addressable())
}

func TestSettingsService_SaveSettings_DefaultRadius(t *testing.T) {
	svc, recipientRepo, tokenUsecase, publisher, platform := createTestSettingsService(t)

	ctx := context.Background()
	token := "ExponentPushToken[seeker]"

	tokenUsecase.EXPECT().FreshPushToken(ctx, platform).Return(&token)
	recipientRepo.EXPECT().
		UpsertSettings(ctx, mock.AnythingOfType("*entity.Recipient")).
		Return(nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	recipient, err := svc.SaveSettings(ctx, uuid.New(), usecase.SettingsInput{
		Role:      entity.RoleSeeker,
		Latitude:  12.9,
		Longitude: 77.6,
		RadiusKm:  0,
		Enabled:   true,
	}, platform)

	require.NoError(t, err)
	assert.Equal(t, 15.0, recipient.RadiusKm)
}

func TestSettingsService_SaveSettings_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.SettingsInput
		wantErr error
	}{
		{
			name:    "invalid role",
			input:   usecase.SettingsInput{Role: "admin", Latitude: 12.9, Longitude: 77.6, RadiusKm: 5},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "latitude out of range",
			input:   usecase.SettingsInput{Role: entity.RoleSeeker, Latitude: 91, Longitude: 77.6, RadiusKm: 5},
			wantErr: domainerrors.ErrInvalidCoordinates,
		},
		{
			name:    "longitude out of range",
			input:   usecase.SettingsInput{Role: entity.RoleSeeker, Latitude: 12.9, Longitude: 181, RadiusKm: 5},
			wantErr: domainerrors.ErrInvalidCoordinates,
		},
		{
			name:    "radius below minimum",
			input:   usecase.SettingsInput{Role: entity.RoleSeeker, Latitude: 12.9, Longitude: 77.6, RadiusKm: 0.5},
			wantErr: domainerrors.ErrRadiusOutOfRange,
		},
		{
			name:    "radius above maximum",
			input:   usecase.SettingsInput{Role: entity.RoleSeeker, Latitude: 12.9, Longitude: 77.6, RadiusKm: 51},
			wantErr: domainerrors.ErrRadiusOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _, platform := createTestSettingsService(t)

			_, err := svc.SaveSettings(context.Background(), uuid.New(), tt.input, platform)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			wantApp := tt.wantErr.(domainerrors.AppError)
			assert.Equal(t, wantApp.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestSettingsService_SaveSettings_UpsertFailure(t *testing.T) {
	svc, recipientRepo, tokenUsecase, _, platform := createTestSettingsService(t)

	ctx := context.Background()

	tokenUsecase.EXPECT().FreshPushToken(ctx, platform).Return(nil)
	recipientRepo.EXPECT().
		UpsertSettings(ctx, mock.AnythingOfType("*entity.Recipient")).
		Return(errors.New("insert failed"))

	_, err := svc.SaveSettings(ctx, uuid.New(), usecase.SettingsInput{
		Role:      entity.RoleOwner,
		Latitude:  12.9,
		Longitude: 77.6,
		RadiusKm:  5,
		Enabled:   true,
	}, platform)

	assert.Error(t, err)
}

func TestSettingsService_UpdateLocation(t *testing.T) {
	svc, recipientRepo, _, _, _ := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	recipientRepo.EXPECT().UpdateAnchor(ctx, userID, 13.0, 77.5).Return(nil)

	require.NoError(t, svc.UpdateLocation(ctx, userID, 13.0, 77.5))
}

func TestSettingsService_UpdateLocation_InvalidCoordinates(t *testing.T) {
	svc, _, _, _, _ := createTestSettingsService(t)

	err := svc.UpdateLocation(context.Background(), uuid.New(), -95, 77.5)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCoordinates.ErrorCode(), appErr.ErrorCode())
}

func TestSettingsService_GetSettings(t *testing.T) {
	svc, recipientRepo, _, _, _ := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()
	row := &entity.Recipient{UserID: userID, Role: entity.RoleSeeker, RadiusKm: 15, Enabled: true}

	recipientRepo.EXPECT().FindByUser(ctx, userID).Return(row, nil)

	got, err := svc.GetSettings(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, row, got)
}

func TestSettingsService_DisableNotifications(t *testing.T) {
	svc, recipientRepo, _, _, _ := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	recipientRepo.EXPECT().Disable(ctx, userID).Return(nil)

	require.NoError(t, svc.DisableNotifications(ctx, userID))
}
