package impl

import (
	"context"
	"log/slog"

	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/repository"
	"homeradar/internal/domain/service"
	"homeradar/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultBrowseLimit = 20
	maxBrowseLimit     = 100
)

type listingService struct {
	listingRepo repository.ListingRepository
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	qrcodeSvc   service.QRCodeService
	logger      *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(
	listingRepo repository.ListingRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		listingRepo: listingRepo,
		txManager:   txManager,
		publisher:   publisher,
		qrcodeSvc:   qrcodeSvc,
		logger:      logger,
	}
}

// CreateListing publishes a new listing and triggers its fan-out.
func (s *listingService) CreateListing(ctx context.Context, ownerID uuid.UUID, input usecase.CreateListingInput) (*entity.Listing, error) {
	if !validCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if input.Title == "" || input.Rent <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and a positive rent are required")
	}

	listing := &entity.Listing{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Rent:        input.Rent,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Status:      entity.ListingStatusActive,
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	// Fan-out is best-effort: the listing stands even when the trigger event
	// cannot be published.
	event := &service.NotificationEvent{
		Kind:      service.EventKindListingCreated,
		ListingID: listing.ID.String(),
		Title:     listing.Title,
		Rent:      listing.Rent,
		Latitude:  listing.Latitude,
		Longitude: listing.Longitude,
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish listing created event",
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err),
		)
	}

	return listing, nil
}

// GetListing retrieves a single listing.
func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return s.listingRepo.FindListingByID(ctx, id)
}

// BrowseListings retrieves active listings with pagination.
func (s *listingService) BrowseListings(ctx context.Context, limit, offset int) ([]*entity.Listing, error) {
	if limit <= 0 {
		limit = defaultBrowseLimit
	}
	if limit > maxBrowseLimit {
		limit = maxBrowseLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.listingRepo.FindActiveListings(ctx, limit, offset)
}

// GetOwnerListings retrieves all of an owner's listings.
func (s *listingService) GetOwnerListings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	return s.listingRepo.FindListingsByOwner(ctx, ownerID)
}

// UpdateListing applies changes to an owner's listing.
func (s *listingService) UpdateListing(ctx context.Context, ownerID, id uuid.UUID, input usecase.UpdateListingInput) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != ownerID {
		return nil, domainerrors.ErrListingOwnershipViolation
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Rent != nil {
		if *input.Rent <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("rent must be positive")
		}
		listing.Rent = *input.Rent
	}
	if input.Address != nil {
		listing.Address = *input.Address
	}
	if input.Latitude != nil && input.Longitude != nil {
		if !validCoordinate(*input.Latitude, *input.Longitude) {
			return nil, domainerrors.ErrInvalidCoordinates
		}
		listing.Latitude = *input.Latitude
		listing.Longitude = *input.Longitude
	}
	if input.Status != nil {
		status := entity.ListingStatus(*input.Status)
		switch status {
		case entity.ListingStatusActive, entity.ListingStatusRented, entity.ListingStatusInactive:
			listing.Status = status
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown listing status")
		}
	}

	if err := s.listingRepo.UpdateListing(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// DeleteListing removes an owner's listing and every bookmark on it in one
// transaction.
func (s *listingService) DeleteListing(ctx context.Context, ownerID, id uuid.UUID) error {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.OwnerID != ownerID {
		return domainerrors.ErrListingOwnershipViolation
	}

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.NewListingRepository()

		if err := listingRepo.PurgeSavedForListing(ctx, id); err != nil {
			return err
		}

		return listingRepo.DeleteListing(ctx, id)
	})
}

// SaveListing bookmarks a listing for a seeker.
func (s *listingService) SaveListing(ctx context.Context, userID, listingID uuid.UUID) error {
	return s.listingRepo.SaveForUser(ctx, userID, listingID)
}

// UnsaveListing removes a seeker's bookmark.
func (s *listingService) UnsaveListing(ctx context.Context, userID, listingID uuid.UUID) error {
	return s.listingRepo.UnsaveForUser(ctx, userID, listingID)
}

// GetSavedListings retrieves a seeker's bookmarked listings.
func (s *listingService) GetSavedListings(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	return s.listingRepo.FindSavedByUser(ctx, userID)
}

// GenerateShareQR renders a QR code image for sharing a listing.
func (s *listingService) GenerateShareQR(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	if _, err := s.listingRepo.FindListingByID(ctx, listingID); err != nil {
		return nil, err
	}

	return s.qrcodeSvc.GenerateListingQR(listingID)
}
