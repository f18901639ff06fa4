package repository

import (
	"context"
	"time"

	"minaret/internal/domain/entity"

	"github.com/google/uuid"
)

// TypeResultCount is one row of the grouped audit log rollup.
type TypeResultCount struct {
	Type   entity.NotificationType
	Result entity.LogResult
	Count  int64
}

// NotificationLogRepository defines the interface for the append-only audit
// log of delivery attempt outcomes.
type NotificationLogRepository interface {
	// CreateLog persists a single audit log entry. Entries are never updated.
	CreateLog(ctx context.Context, log *entity.NotificationLog) error

	// CountSentForUser counts sent entries for a user since the given time,
	// used by the daily cap check.
	CountSentForUser(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)

	// CountByTypeAndResult returns grouped counts of entries with sent_at in
	// [from, to), used by the metrics rollup.
	CountByTypeAndResult(ctx context.Context, from, to time.Time) ([]TypeResultCount, error)
}
