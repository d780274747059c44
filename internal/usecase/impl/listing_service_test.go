package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/repository"
	domainservice "homeradar/internal/domain/service"
	mockRepo "homeradar/internal/mocks/repository"
	mockSvc "homeradar/internal/mocks/service"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestListingService(t *testing.T) (
	usecase.ListingUsecase,
	*mockRepo.MockListingRepository,
	*mockRepo.MockTransactionManager,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockQRCodeService,
) {
	listingRepo := mockRepo.NewMockListingRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewListingService(listingRepo, txManager, publisher, qrcodeSvc, logger)

	return svc, listingRepo, txManager, publisher, qrcodeSvc
}

func TestListingService_CreateListing_Success(t *testing.T) {
	svc, listingRepo, _, publisher, _ := createTestListingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	listingID := uuid.New()

	listingRepo.EXPECT().
		CreateListing(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, listing *entity.Listing) {
			listing.ID = listingID
		}).
		Return(nil)

	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *domainservice.NotificationEvent) {
			assert.Equal(t, domainservice.EventKindListingCreated, event.Kind)
			assert.Equal(t, listingID.String(), event.ListingID)
			assert.Equal(t, 25000.0, event.Rent)
		}).
		Return(nil)

	listing, err := svc.CreateListing(ctx, ownerID, usecase.CreateListingInput{
		Title:     "2BHK in Koramangala",
		Rent:      25000,
		Address:   "5th Block, Koramangala",
		Latitude:  12.9352,
		Longitude: 77.6245,
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, listing.OwnerID)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
}

func TestListingService_CreateListing_PublishFailureTolerated(t *testing.T) {
	svc, listingRepo, _, publisher, _ := createTestListingService(t)

	ctx := context.Background()

	listingRepo.EXPECT().
		CreateListing(ctx, mock.AnythingOfType("*entity.Listing")).
		Return(nil)
	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.Anything).
		Return(errors.New("broker down"))

	listing, err := svc.CreateListing(ctx, uuid.New(), usecase.CreateListingInput{
		Title:     "Studio",
		Rent:      9000,
		Latitude:  12.9,
		Longitude: 77.6,
	})

	require.NoError(t, err)
	assert.NotNil(t, listing)
}

func TestListingService_CreateListing_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateListingInput
	}{
		{name: "missing title", input: usecase.CreateListingInput{Rent: 9000, Latitude: 12.9, Longitude: 77.6}},
		{name: "zero rent", input: usecase.CreateListingInput{Title: "Studio", Latitude: 12.9, Longitude: 77.6}},
		{name: "bad coordinates", input: usecase.CreateListingInput{Title: "Studio", Rent: 9000, Latitude: 95, Longitude: 77.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _, _ := createTestListingService(t)

			_, err := svc.CreateListing(context.Background(), uuid.New(), tt.input)

			assert.Error(t, err)
		})
	}
}

func TestListingService_UpdateListing_Success(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	listingID := uuid.New()
	existing := &entity.Listing{
		ID:      listingID,
		OwnerID: ownerID,
		Title:   "2BHK in Koramangala",
		Rent:    25000,
		Status:  entity.ListingStatusActive,
	}

	listingRepo.EXPECT().FindListingByID(ctx, listingID).Return(existing, nil)
	listingRepo.EXPECT().
		UpdateListing(ctx, mock.AnythingOfType("*entity.Listing")).
		Return(nil)

	newRent := 27000.0
	newStatus := "rented"
	updated, err := svc.UpdateListing(ctx, ownerID, listingID, usecase.UpdateListingInput{
		Rent:   &newRent,
		Status: &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, 27000.0, updated.Rent)
	assert.Equal(t, entity.ListingStatusRented, updated.Status)
	assert.Equal(t, "2BHK in Koramangala", updated.Title)
}

func TestListingService_UpdateListing_OwnershipViolation(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	listingID := uuid.New()

	listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.Listing{ID: listingID, OwnerID: uuid.New()}, nil)

	newRent := 27000.0
	_, err := svc.UpdateListing(ctx, uuid.New(), listingID, usecase.UpdateListingInput{Rent: &newRent})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrListingOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}

func TestListingService_UpdateListing_UnknownStatus(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	listingID := uuid.New()

	listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.Listing{ID: listingID, OwnerID: ownerID}, nil)

	badStatus := "archived"
	_, err := svc.UpdateListing(ctx, ownerID, listingID, usecase.UpdateListingInput{Status: &badStatus})

	assert.Error(t, err)
}

func TestListingService_DeleteListing_PurgesBookmarksInTransaction(t *testing.T) {
	svc, listingRepo, txManager, _, _ := createTestListingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	listingID := uuid.New()

	listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.Listing{ID: listingID, OwnerID: ownerID}, nil)

	txListingRepo := mockRepo.NewMockListingRepository(t)
	txListingRepo.EXPECT().PurgeSavedForListing(ctx, listingID).Return(nil)
	txListingRepo.EXPECT().DeleteListing(ctx, listingID).Return(nil)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().NewListingRepository().Return(txListingRepo)

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	require.NoError(t, svc.DeleteListing(ctx, ownerID, listingID))
}

func TestListingService_DeleteListing_OwnershipViolation(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	listingID := uuid.New()

	listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.Listing{ID: listingID, OwnerID: uuid.New()}, nil)

	err := svc.DeleteListing(ctx, uuid.New(), listingID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrListingOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}

func TestListingService_DeleteListing_NotFound(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	listingID := uuid.New()

	listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	err := svc.DeleteListing(ctx, uuid.New(), listingID)

	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestListingService_BrowseListings_ClampsPagination(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 20, wantOffset: 0},
		{name: "capped", limit: 500, offset: 40, wantLimit: 100, wantOffset: 40},
		{name: "negative offset", limit: 10, offset: -5, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, listingRepo, _, _, _ := createTestListingService(t)

			ctx := context.Background()

			listingRepo.EXPECT().
				FindActiveListings(ctx, tt.wantLimit, tt.wantOffset).
				Return([]*entity.Listing{}, nil)

			_, err := svc.BrowseListings(ctx, tt.limit, tt.offset)

			require.NoError(t, err)
		})
	}
}

func TestListingService_SaveListing_AlreadySaved(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	listingRepo.EXPECT().
		SaveForUser(ctx, userID, listingID).
		Return(repository.ErrListingAlreadySaved)

	err := svc.SaveListing(ctx, userID, listingID)

	assert.ErrorIs(t, err, repository.ErrListingAlreadySaved)
}

func TestListingService_GetSavedListings(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	userID := uuid.New()
	saved := []*entity.Listing{{ID: uuid.New(), Title: "1BHK"}}

	listingRepo.EXPECT().FindSavedByUser(ctx, userID).Return(saved, nil)

	got, err := svc.GetSavedListings(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestListingService_GenerateShareQR(t *testing.T) {
	svc, listingRepo, _, _, qrcodeSvc := createTestListingService(t)

	ctx := context.Background()
	listingID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(&entity.Listing{ID: listingID}, nil)
	qrcodeSvc.EXPECT().GenerateListingQR(listingID).Return(png, nil)

	got, err := svc.GenerateShareQR(ctx, listingID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestListingService_GenerateShareQR_ListingMissing(t *testing.T) {
	svc, listingRepo, _, _, _ := createTestListingService(t)

	ctx := context.Background()
	listingID := uuid.New()

	listingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	_, err := svc.GenerateShareQR(ctx, listingID)

	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}
