package impl

import (
	"context"
	"time"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	"minaret/internal/usecase"

	"github.com/pkg/errors"
)

type metricsService struct {
	logRepo repository.NotificationLogRepository
}

// NewMetricsService creates the read-only audit log rollup.
func NewMetricsService(logRepo repository.NotificationLogRepository) usecase.MetricsUsecase {
	return &metricsService{logRepo: logRepo}
}

// GetMetrics aggregates delivery outcomes with sent_at in [from, to).
func (s *metricsService) GetMetrics(ctx context.Context, from, to time.Time) (*usecase.NotificationMetrics, error) {
	counts, err := s.logRepo.CountByTypeAndResult(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate notification logs")
	}

	metrics := &usecase.NotificationMetrics{
		SentByType:   make(map[entity.NotificationType]int64),
		FailedByType: make(map[entity.NotificationType]int64),
	}

	for _, row := range counts {
		switch row.Result {
		case entity.ResultSent:
			metrics.TotalSent += row.Count
			metrics.SentByType[row.Type] += row.Count
		case entity.ResultFailed:
			metrics.TotalFailed += row.Count
			metrics.FailedByType[row.Type] += row.Count
		default:
			// Skips are deliberate policy outcomes, not delivery results.
		}
	}

	if total := metrics.TotalSent + metrics.TotalFailed; total > 0 {
		metrics.SuccessRate = float64(metrics.TotalSent) / float64(total) * 100
	}

	return metrics, nil
}
