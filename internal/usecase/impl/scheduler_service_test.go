package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"minaret/config"
	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	mockRepo "minaret/internal/mocks/repository"
	mockSvc "minaret/internal/mocks/service"
	"minaret/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSchedulerService(t *testing.T) (
	usecase.SchedulerUsecase,
	*mockRepo.MockScheduledNotificationRepository,
	*mockSvc.MockClock,
) {
	notifRepo := mockRepo.NewMockScheduledNotificationRepository(t)
	clock := mockSvc.NewMockClock(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewSchedulerService(logger, notifRepo, clock, &config.Config{
		Dispatch: config.DispatchConfig{MaxRetries: 3},
	})

	return service, notifRepo, clock
}

func TestSchedulerService_Schedule_Success(t *testing.T) {
	service, notifRepo, clock := createTestSchedulerService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	executeAt := now.Add(time.Hour)

	clock.EXPECT().Now().Return(now)
	notifRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		Run(func(ctx context.Context, notification *entity.ScheduledNotification) {
			assert.Equal(t, entity.StatusPending, notification.Status)
			assert.Equal(t, entity.TypeMorningReminder, notification.Type)
			assert.Equal(t, executeAt, notification.ExecuteAt)
			assert.Equal(t, 0, notification.Retries)
			assert.Equal(t, 3, notification.MaxRetries)
			assert.Nil(t, notification.UniqueKey)
		}).
		Return(nil)

	id, err := service.Schedule(ctx, usecase.ScheduleInput{
		UserID:    &userID,
		Type:      entity.TypeMorningReminder,
		ExecuteAt: executeAt,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestSchedulerService_Schedule_UnknownTypeRejected(t *testing.T) {
	service, _, _ := createTestSchedulerService(t)

	_, err := service.Schedule(context.Background(), usecase.ScheduleInput{
		Type:      entity.NotificationType("bogus"),
		ExecuteAt: time.Now().UTC(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrUnknownNotificationType)
}

func TestSchedulerService_Schedule_ZeroExecuteAtRejected(t *testing.T) {
	service, _, _ := createTestSchedulerService(t)

	_, err := service.Schedule(context.Background(), usecase.ScheduleInput{
		Type: entity.TypeDebug,
	})

	require.Error(t, err)
}

func TestSchedulerService_Schedule_IdempotentOnExistingKey(t *testing.T) {
	service, notifRepo, _ := createTestSchedulerService(t)

	ctx := context.Background()
	key := "morning:2026-03-10:user-1"
	existing := &entity.ScheduledNotification{ID: uuid.New(), UniqueKey: &key}

	// The pre-insert lookup hits, so no create happens.
	notifRepo.EXPECT().FindNotificationByUniqueKey(ctx, key).Return(existing, nil)

	id, err := service.Schedule(ctx, usecase.ScheduleInput{
		Type:      entity.TypeMorningReminder,
		ExecuteAt: time.Now().UTC(),
		UniqueKey: &key,
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, id)
}

func TestSchedulerService_Schedule_UniqueKeyRaceReturnsWinner(t *testing.T) {
	service, notifRepo, clock := createTestSchedulerService(t)

	ctx := context.Background()
	key := "evening:2026-03-10:user-2"
	winner := &entity.ScheduledNotification{ID: uuid.New(), UniqueKey: &key}

	clock.EXPECT().Now().Return(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	// Both racers miss the lookup; the unique index decides, and the loser
	// re-fetches the winner's record.
	notifRepo.EXPECT().FindNotificationByUniqueKey(ctx, key).Return(nil, repository.ErrNotificationNotFound).Once()
	notifRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(repository.ErrDuplicateUniqueKey)
	notifRepo.EXPECT().FindNotificationByUniqueKey(ctx, key).Return(winner, nil).Once()

	id, err := service.Schedule(ctx, usecase.ScheduleInput{
		Type:      entity.TypeEveningReminder,
		ExecuteAt: time.Now().UTC(),
		UniqueKey: &key,
	})

	require.NoError(t, err)
	assert.Equal(t, winner.ID, id)
}
