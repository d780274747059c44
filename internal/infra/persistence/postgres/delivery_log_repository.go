package postgres

import (
	"context"

	"homeradar/internal/domain/entity"
	"homeradar/internal/domain/repository"
	"homeradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// BatchCreate persists multiple delivery log entries in a single insert.
func (repo *deliveryLogRepository) BatchCreate(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).Create(&logModels).Error; err != nil {
		return errors.Wrap(err, "failed to batch create delivery logs")
	}

	return nil
}

// fromDeliveryLogDomain converts a domain DeliveryLog entity to a GORM DeliveryLogModel.
func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ListingID: data.ListingID,
		Kind:      data.Kind,
		SentAt:    data.SentAt,
	}
}
