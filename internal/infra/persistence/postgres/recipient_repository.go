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
	"gorm.io/gorm/clause"
)

// maxSeekerRadiusKm bounds the pre-filter box for seeker queries. Seeker rows
// carry their own radius, so the box must cover the largest radius a row can hold.
const maxSeekerRadiusKm = 50.0

// recipientRepository implements the repository.RecipientRepository interface.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// UpsertSettings creates or replaces the settings row for a user.
func (repo *recipientRepository) UpsertSettings(ctx context.Context, recipient *entity.Recipient) error {
	recipientM := fromRecipientDomain(recipient)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"role", "push_token", "enabled", "radius_km", "latitude", "longitude", "updated_at",
			}),
		}).
		Create(recipientM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required settings information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert notification settings")
	}

	recipient.CreatedAt = recipientM.CreatedAt
	recipient.UpdatedAt = recipientM.UpdatedAt

	return nil
}

// FindByUser retrieves the settings row for a user.
func (repo *recipientRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Recipient, error) {
	var recipientM model.NotificationSettingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&recipientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification settings by user")
	}

	return toRecipientDomain(&recipientM), nil
}

// UpdateAnchor moves a user's anchor coordinate without touching the rest of the row.
func (repo *recipientRepository) UpdateAnchor(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationSettingModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"latitude":  latitude,
			"longitude": longitude,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update anchor coordinate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipientNotFound
	}

	return nil
}

// Disable turns off notifications for a user.
func (repo *recipientRepository) Disable(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationSettingModel{}).
		Where("user_id = ?", userID).
		Update("enabled", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to disable notifications")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipientNotFound
	}

	return nil
}

// nearbyRow is the scan target for the proximity queries.
type nearbyRow struct {
	UserID     uuid.UUID
	PushToken  string
	DistanceKm float64
}

// FindNearbySeekers performs a PostGIS geographic query for every enabled
// seeker with a push token whose own stored radius covers the origin.
// ST_DWithin keeps rows exactly at the boundary, so the match is inclusive.
func (repo *recipientRepository) FindNearbySeekers(ctx context.Context, originLat, originLon float64) ([]*entity.NearbyRecipient, error) {
	var rows []*nearbyRow

	bound := boundAround(originLat, originLon, maxSeekerRadiusKm)

	query := `
		SELECT s.user_id,
		       s.push_token,
		       ST_Distance(
		         s.location::geography,
		         ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		       ) / 1000.0 AS distance_km
		FROM notification_settings s
		WHERE s.role = 'seeker'
		  AND s.enabled = true
		  AND s.push_token IS NOT NULL
		  AND s.latitude BETWEEN ? AND ?
		  AND s.longitude BETWEEN ? AND ?
		  AND ST_DWithin(
		    s.location::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    s.radius_km * 1000.0
		  )
		ORDER BY distance_km ASC, s.user_id ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query,
			originLon, originLat,
			bound.Min.Lat(), bound.Max.Lat(),
			bound.Min.Lon(), bound.Max.Lon(),
			originLon, originLat,
		).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby seekers")
	}

	return toNearbyDomain(rows), nil
}

// FindNearbyOwners performs a PostGIS geographic query for every enabled owner
// with a push token who has at least one active listing within radiusKm of the
// origin. The reported distance is to the owner's nearest matching listing.
func (repo *recipientRepository) FindNearbyOwners(ctx context.Context, originLat, originLon, radiusKm float64) ([]*entity.NearbyRecipient, error) {
	var rows []*nearbyRow

	bound := boundAround(originLat, originLon, radiusKm)

	query := `
		SELECT s.user_id,
		       s.push_token,
		       MIN(ST_Distance(
		         l.location::geography,
		         ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		       )) / 1000.0 AS distance_km
		FROM notification_settings s
		JOIN listings l
		  ON l.owner_id = s.user_id
		 AND l.status = 'active'
		 AND l.deleted_at IS NULL
		WHERE s.role = 'owner'
		  AND s.enabled = true
		  AND s.push_token IS NOT NULL
		  AND l.latitude BETWEEN ? AND ?
		  AND l.longitude BETWEEN ? AND ?
		  AND ST_DWithin(
		    l.location::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ? * 1000.0
		  )
		GROUP BY s.user_id, s.push_token
		ORDER BY distance_km ASC, s.user_id ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query,
			originLon, originLat,
			bound.Min.Lat(), bound.Max.Lat(),
			bound.Min.Lon(), bound.Max.Lon(),
			originLon, originLat,
			radiusKm,
		).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby owners")
	}

	return toNearbyDomain(rows), nil
}

// --- Mapper Functions ---

// toNearbyDomain converts proximity scan rows to domain NearbyRecipient values.
func toNearbyDomain(rows []*nearbyRow) []*entity.NearbyRecipient {
	recipients := make([]*entity.NearbyRecipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, &entity.NearbyRecipient{
			UserID:     row.UserID,
			PushToken:  row.PushToken,
			DistanceKm: row.DistanceKm,
		})
	}

	return recipients
}

// toRecipientDomain converts a GORM NotificationSettingModel to a domain Recipient entity.
func toRecipientDomain(data *model.NotificationSettingModel) *entity.Recipient {
	if data == nil {
		return nil
	}

	return &entity.Recipient{
		UserID:    data.UserID,
		Role:      entity.Role(data.Role),
		PushToken: data.PushToken,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		RadiusKm:  data.RadiusKm,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRecipientDomain converts a domain Recipient entity to a GORM NotificationSettingModel.
func fromRecipientDomain(data *entity.Recipient) *model.NotificationSettingModel {
	if data == nil {
		return nil
	}

	return &model.NotificationSettingModel{
		UserID:    data.UserID,
		Role:      string(data.Role),
		PushToken: data.PushToken,
		Enabled:   data.Enabled,
		RadiusKm:  data.RadiusKm,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
