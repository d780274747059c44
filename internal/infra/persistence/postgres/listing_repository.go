package postgres

import (
	"context"

	"homeradar/internal/domain/entity"
	domainerrors "homeradar/internal/domain/errors"
	"homeradar/internal/domain/repository"
	"homeradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// CreateListing persists a new listing.
func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindListingsByOwner retrieves all listings for an owner (excluding soft-deleted).
func (repo *listingRepository) FindListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	return toListingDomainSlice(listingModels), nil
}

// FindActiveListings retrieves active listings with pagination for browse views.
func (repo *listingRepository) FindActiveListings(ctx context.Context, limit, offset int) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ListingStatusActive)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active listings")
	}

	return toListingDomainSlice(listingModels), nil
}

// UpdateListing persists changes to an existing listing.
func (repo *listingRepository) UpdateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"title":       listingM.Title,
			"description": listingM.Description,
			"rent":        listingM.Rent,
			"address":     listingM.Address,
			"latitude":    listingM.Latitude,
			"longitude":   listingM.Longitude,
			"status":      listingM.Status,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// DeleteListing removes a listing by its ID (soft delete).
func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// SaveForUser bookmarks a listing for a user.
func (repo *listingRepository) SaveForUser(ctx context.Context, userID, listingID uuid.UUID) error {
	savedM := &model.SavedListingModel{
		UserID:    userID,
		ListingID: listingID,
	}

	if err := repo.db.WithContext(ctx).Create(savedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrListingAlreadySaved
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save listing")
	}

	return nil
}

// UnsaveForUser removes a user's bookmark on a listing.
func (repo *listingRepository) UnsaveForUser(ctx context.Context, userID, listingID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&model.SavedListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unsave listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// PurgeSavedForListing removes every bookmark on a listing.
func (repo *listingRepository) PurgeSavedForListing(ctx context.Context, listingID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Delete(&model.SavedListingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to purge saved listings")
	}

	return nil
}

// FindSavedByUser retrieves the listings a user has bookmarked.
func (repo *listingRepository) FindSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN saved_listings sl ON sl.listing_id = listings.id").
		Where("sl.user_id = ?", userID).
		Order("sl.created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find saved listings")
	}

	return toListingDomainSlice(listingModels), nil
}

// --- Mapper Functions ---

func toListingDomainSlice(listingModels []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Rent:        data.Rent,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      entity.ListingStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Rent:        data.Rent,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
