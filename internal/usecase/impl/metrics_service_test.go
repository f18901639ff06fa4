package impl

import (
	"context"
	"testing"
	"time"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	mockRepo "minaret/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsService_GetMetrics_Aggregates(t *testing.T) {
	logRepo := mockRepo.NewMockNotificationLogRepository(t)
	service := NewMetricsService(logRepo)

	ctx := context.Background()
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	logRepo.EXPECT().CountByTypeAndResult(ctx, from, to).Return([]repository.TypeResultCount{
		{Type: entity.TypeMorningReminder, Result: entity.ResultSent, Count: 2},
		{Type: entity.TypeHadithDaily, Result: entity.ResultFailed, Count: 1},
		{Type: entity.TypeEveningReminder, Result: entity.ResultSkippedQuietHours, Count: 5},
	}, nil)

	metrics, err := service.GetMetrics(ctx, from, to)

	require.NoError(t, err)
	assert.Equal(t, int64(2), metrics.TotalSent)
	assert.Equal(t, int64(1), metrics.TotalFailed)
	assert.InDelta(t, 66.67, metrics.SuccessRate, 0.01)
	assert.Equal(t, int64(2), metrics.SentByType[entity.TypeMorningReminder])
	assert.Equal(t, int64(1), metrics.FailedByType[entity.TypeHadithDaily])
	// Skips are policy outcomes and never count toward the rate.
	assert.NotContains(t, metrics.SentByType, entity.TypeEveningReminder)
	assert.NotContains(t, metrics.FailedByType, entity.TypeEveningReminder)
}

func TestMetricsService_GetMetrics_EmptyWindow(t *testing.T) {
	logRepo := mockRepo.NewMockNotificationLogRepository(t)
	service := NewMetricsService(logRepo)

	ctx := context.Background()
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	logRepo.EXPECT().CountByTypeAndResult(ctx, from, to).Return(nil, nil)

	metrics, err := service.GetMetrics(ctx, from, to)

	require.NoError(t, err)
	assert.Zero(t, metrics.TotalSent)
	assert.Zero(t, metrics.TotalFailed)
	assert.Zero(t, metrics.SuccessRate)
}
