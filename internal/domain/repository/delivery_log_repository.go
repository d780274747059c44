package repository

import (
	"context"

	"homeradar/internal/domain/entity"
)

// DeliveryLogRepository defines the interface for the append-only delivery
// audit store. Inserts are best-effort: callers tolerate and swallow failures.
type DeliveryLogRepository interface {
	// BatchCreate persists multiple delivery log entries in one round trip.
	BatchCreate(ctx context.Context, logs []*entity.DeliveryLog) error
}
