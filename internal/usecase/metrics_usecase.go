package usecase

import (
	"context"
	"time"

	"minaret/internal/domain/entity"
)

// NotificationMetrics is the read-only rollup of the audit log over a window.
type NotificationMetrics struct {
	TotalSent    int64                             `json:"total_sent"`
	TotalFailed  int64                             `json:"total_failed"`
	SuccessRate  float64                           `json:"success_rate"` // Percentage; 0 when nothing was sent or failed.
	SentByType   map[entity.NotificationType]int64 `json:"sent_by_type"`
	FailedByType map[entity.NotificationType]int64 `json:"failed_by_type"`
}

// MetricsUsecase derives send/fail counts and rates from the audit log for
// the operational surface. Never mutates the log.
type MetricsUsecase interface {
	GetMetrics(ctx context.Context, from, to time.Time) (*NotificationMetrics, error)
}
