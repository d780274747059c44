package usecase

import (
	"context"

	"homeradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListingInput carries the fields an owner submits when publishing a listing.
type CreateListingInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Rent        float64 `json:"rent"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// UpdateListingInput carries the mutable fields of a listing. Nil fields are
// left unchanged.
type UpdateListingInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Rent        *float64 `json:"rent"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Status      *string  `json:"status"`
}

// ListingUsecase defines the interface for listing management use cases.
type ListingUsecase interface {
	// CreateListing publishes a new listing and triggers the new-listing
	// fan-out for it. Fan-out is best-effort: the listing survives even when
	// the trigger event cannot be published.
	CreateListing(ctx context.Context, ownerID uuid.UUID, input CreateListingInput) (*entity.Listing, error)

	// GetListing retrieves a single listing.
	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// BrowseListings retrieves active listings with pagination.
	BrowseListings(ctx context.Context, limit, offset int) ([]*entity.Listing, error)

	// GetOwnerListings retrieves all of an owner's listings.
	GetOwnerListings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)

	// UpdateListing applies changes to an owner's listing.
	UpdateListing(ctx context.Context, ownerID, id uuid.UUID, input UpdateListingInput) (*entity.Listing, error)

	// DeleteListing removes an owner's listing along with every bookmark on it.
	DeleteListing(ctx context.Context, ownerID, id uuid.UUID) error

	// SaveListing bookmarks a listing for a seeker.
	SaveListing(ctx context.Context, userID, listingID uuid.UUID) error

	// UnsaveListing removes a seeker's bookmark.
	UnsaveListing(ctx context.Context, userID, listingID uuid.UUID) error

	// GetSavedListings retrieves a seeker's bookmarked listings.
	GetSavedListings(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)

	// GenerateShareQR renders a QR code image for sharing a listing.
	GenerateShareQR(ctx context.Context, listingID uuid.UUID) ([]byte, error)
}
