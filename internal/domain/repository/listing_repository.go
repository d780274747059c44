package repository

import (
	"context"

	"homeradar/internal/domain/entity"
	"homeradar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingAlreadySaved is returned when a listing is saved twice by the same user.
	ErrListingAlreadySaved = errors.New("listing already saved")
)

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// CreateListing persists a new listing.
	CreateListing(ctx context.Context, listing *entity.Listing) error

	// FindListingByID retrieves a listing by its unique ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindListingsByOwner retrieves all listings for an owner (excluding soft-deleted).
	FindListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)

	// FindActiveListings retrieves active listings with pagination for browse views.
	FindActiveListings(ctx context.Context, limit, offset int) ([]*entity.Listing, error)

	// UpdateListing persists changes to an existing listing.
	UpdateListing(ctx context.Context, listing *entity.Listing) error

	// DeleteListing removes a listing by its ID (soft delete).
	DeleteListing(ctx context.Context, id uuid.UUID) error

	// SaveForUser bookmarks a listing for a user.
	SaveForUser(ctx context.Context, userID, listingID uuid.UUID) error

	// UnsaveForUser removes a user's bookmark on a listing.
	UnsaveForUser(ctx context.Context, userID, listingID uuid.UUID) error

	// PurgeSavedForListing removes every bookmark on a listing. Used when the
	// listing itself is removed.
	PurgeSavedForListing(ctx context.Context, listingID uuid.UUID) error

	// FindSavedByUser retrieves the listings a user has bookmarked.
	FindSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)
}
