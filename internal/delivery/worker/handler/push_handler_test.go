package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homeradar/config"
	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/service"
	mockUC "homeradar/internal/mocks/usecase"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notificationSvc := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          logger,
		NotificationSvc: notificationSvc,
	})

	return h, notificationSvc
}

func pushRequest(t *testing.T, event *service.NotificationEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = uuid.New().String()
	msg.Subscription = "projects/homeradar/subscriptions/notification-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_ListingCreated(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)

	listingID := uuid.New()
	event := &service.NotificationEvent{
		Kind:      service.EventKindListingCreated,
		ListingID: listingID.String(),
		Title:     "2BHK in Koramangala",
		Rent:      25000,
		Latitude:  12.9352,
		Longitude: 77.6245,
	}

	notificationSvc.EXPECT().
		NotifyNearbySeekers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, listingEvent *entity.ListingEvent) {
			assert.Equal(t, listingID, listingEvent.ListingID)
			assert.Equal(t, 25000.0, listingEvent.Rent)
		}).
		Return(&usecase.DispatchResult{Success: true, Count: 3}, nil)

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_SeekerLocation(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)

	event := &service.NotificationEvent{
		Kind:      service.EventKindSeekerLocation,
		Latitude:  12.9352,
		Longitude: 77.6245,
		RadiusKm:  20,
	}

	notificationSvc.EXPECT().
		NotifyNearbyOwners(mock.Anything, 12.9352, 77.6245, 20.0).
		Return(&usecase.DispatchResult{Success: true, Count: 1}, nil)

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_QueryFailureIsRetried(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)

	event := &service.NotificationEvent{
		Kind:      service.EventKindSeekerLocation,
		Latitude:  12.9,
		Longitude: 77.6,
		RadiusKm:  5,
	}

	notificationSvc.EXPECT().
		NotifyNearbyOwners(mock.Anything, 12.9, 77.6, 5.0).
		Return(nil, errors.New("connection refused"))

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	// 503 asks Pub/Sub to redeliver.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_UnknownKindIsDropped(t *testing.T) {
	h, _ := createTestPushHandler(t)

	event := &service.NotificationEvent{Kind: "listing_viewed"}

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	// 200 acknowledges the message so a bad event cannot retry forever.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadCoordinatesAreDropped(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)

	event := &service.NotificationEvent{
		Kind:      service.EventKindListingCreated,
		ListingID: uuid.New().String(),
		Latitude:  -95,
		Longitude: 181,
	}

	notificationSvc.EXPECT().
		NotifyNearbySeekers(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCoordinates)

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	// Redelivery cannot repair the event, so it is acknowledged and dropped.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadRadiusIsDropped(t *testing.T) {
	h, notificationSvc := createTestPushHandler(t)

	event := &service.NotificationEvent{
		Kind:      service.EventKindSeekerLocation,
		Latitude:  12.9,
		Longitude: 77.6,
		RadiusKm:  400,
	}

	notificationSvc.EXPECT().
		NotifyNearbyOwners(mock.Anything, 12.9, 77.6, 400.0).
		Return(nil, domainerrors.ErrRadiusOutOfRange)

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidListingIDIsDropped(t *testing.T) {
	h, _ := createTestPushHandler(t)

	event := &service.NotificationEvent{
		Kind:      service.EventKindListingCreated,
		ListingID: "not-a-uuid",
		Latitude:  12.9,
		Longitude: 77.6,
	}

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEnvelope(t *testing.T) {
	h, _ := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%not-base64%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID_Priority(t *testing.T) {
	h, _ := createTestPushHandler(t)

	msg := &PubSubMessage{}
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	event := &service.NotificationEvent{RequestID: "from-event"}

	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	assert.Equal(t, "from-attributes", h.extractRequestID(ctx, msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, msg, event))

	event.RequestID = ""
	generated := h.extractRequestID(ctx, msg, event)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
