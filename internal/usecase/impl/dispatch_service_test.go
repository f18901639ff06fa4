package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"minaret/config"
	"minaret/internal/domain/entity"
	"minaret/internal/domain/service"
	mockRepo "minaret/internal/mocks/repository"
	mockSvc "minaret/internal/mocks/service"
	"minaret/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchTestEnv struct {
	service    usecase.DispatchUsecase
	notifRepo  *mockRepo.MockScheduledNotificationRepository
	logRepo    *mockRepo.MockNotificationLogRepository
	deviceRepo *mockRepo.MockDeviceRepository
	userRepo   *mockRepo.MockUserRepository
	policy     *mockPolicy
	sender     *mockSvc.MockPushSender
	cycleLock  *mockSvc.MockCycleLock
	now        time.Time
}

// mockPolicy is a minimal in-file stand-in so dispatch tests can pin policy
// decisions without re-testing the policy service.
type mockPolicy struct {
	decision usecase.PolicyDecision
	err      error
}

func (p *mockPolicy) Evaluate(context.Context, uuid.UUID, entity.NotificationType, time.Time) (usecase.PolicyDecision, error) {
	return p.decision, p.err
}

func (p *mockPolicy) IsWithinQuietHours(context.Context, uuid.UUID, time.Time) (bool, error) {
	return p.decision == usecase.DecisionDenyQuietHours, nil
}

func (p *mockPolicy) HasExceededDailyLimit(context.Context, uuid.UUID, time.Time) (bool, error) {
	return p.decision == usecase.DecisionDenyDailyLimit, nil
}

func createTestDispatchService(t *testing.T, withLock bool) *dispatchTestEnv {
	env := &dispatchTestEnv{
		notifRepo:  mockRepo.NewMockScheduledNotificationRepository(t),
		logRepo:    mockRepo.NewMockNotificationLogRepository(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		policy:     &mockPolicy{decision: usecase.DecisionAllow},
		sender:     mockSvc.NewMockPushSender(t),
		now:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(env.now).Maybe()

	var cycleLock service.CycleLock
	if withLock {
		env.cycleLock = mockSvc.NewMockCycleLock(t)
		cycleLock = env.cycleLock
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{
		Dispatch: config.DispatchConfig{
			BatchSize:         10,
			Workers:           2,
			MaxRetries:        3,
			SendTimeout:       time.Second,
			StaleClaimTimeout: 5 * time.Minute,
			BackoffBase:       30 * time.Second,
			BackoffMax:        time.Hour,
		},
	}

	env.service = NewDispatchService(
		logger,
		cfg,
		env.notifRepo,
		env.logRepo,
		env.deviceRepo,
		env.userRepo,
		env.policy,
		NewMessageBuilder(),
		env.sender,
		clock,
		cycleLock,
	)

	return env
}

func dueRecord(userID *uuid.UUID, notificationType entity.NotificationType) *entity.ScheduledNotification {
	return &entity.ScheduledNotification{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       notificationType,
		ExecuteAt:  time.Date(2026, 3, 10, 8, 59, 0, 0, time.UTC),
		Status:     entity.StatusPending,
		MaxRetries: 3,
	}
}

func (env *dispatchTestEnv) expectQuietCycle(due []*entity.ScheduledNotification) {
	env.notifRepo.EXPECT().
		ReclaimStaleNotifications(mock.Anything, env.now.Add(-5*time.Minute), env.now).
		Return(int64(0), nil)
	env.notifRepo.EXPECT().FindDueNotifications(mock.Anything, env.now, 10).Return(due, nil)
}

func TestDispatchService_RunDispatchCycle_DeliversDueRecord(t *testing.T) {
	env := createTestDispatchService(t, false)

	userID := uuid.New()
	record := dueRecord(&userID, entity.TypeMorningReminder)
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-1", Language: "en", IsActive: true}

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(true, nil)
	env.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{device}, nil)
	env.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(&entity.User{ID: userID, DisplayName: "Amina"}, nil)
	env.sender.EXPECT().Send(mock.Anything, device, mock.Anything).
		Return(&service.PushReceipt{ProviderMessageID: "projects/x/messages/1"}, nil)
	env.notifRepo.EXPECT().
		MarkNotificationTerminal(mock.Anything, record.ID, entity.StatusSucceeded, "", env.now).
		Return(nil)
	env.logRepo.EXPECT().CreateLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.ResultSent, log.Result)
			assert.Equal(t, "projects/x/messages/1", log.ProviderMessageID)
			assert.Equal(t, "morning_reminder", log.CollapsibleKey)
			assert.Equal(t, record.Type, log.Type)
		}).
		Return(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Due)
	assert.Equal(t, 1, stats.Claimed)
	assert.Equal(t, 1, stats.Succeeded)
	assert.Zero(t, stats.Failed)
}

func TestDispatchService_RunDispatchCycle_ClaimRaceLoss(t *testing.T) {
	env := createTestDispatchService(t, false)

	userID := uuid.New()
	record := dueRecord(&userID, entity.TypeMorningReminder)

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	// Another worker won the claim; nothing else may happen to the record.
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(false, nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Due)
	assert.Zero(t, stats.Claimed)
	assert.Zero(t, stats.Succeeded)
}

func TestDispatchService_RunDispatchCycle_QuietHoursSkip(t *testing.T) {
	env := createTestDispatchService(t, false)
	env.policy.decision = usecase.DecisionDenyQuietHours

	userID := uuid.New()
	record := dueRecord(&userID, entity.TypeEveningReminder)
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-1", Language: "en", IsActive: true}

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(true, nil)
	env.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{device}, nil)
	env.notifRepo.EXPECT().
		MarkNotificationTerminal(mock.Anything, record.ID, entity.StatusSkippedQuietHours, "", env.now).
		Return(nil)
	env.logRepo.EXPECT().CreateLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.ResultSkippedQuietHours, log.Result)
		}).
		Return(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
}

func TestDispatchService_RunDispatchCycle_NoActiveDeviceSkip(t *testing.T) {
	env := createTestDispatchService(t, false)

	userID := uuid.New()
	record := dueRecord(&userID, entity.TypeHadithDaily)

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(true, nil)
	env.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(nil, nil)
	env.notifRepo.EXPECT().
		MarkNotificationTerminal(mock.Anything, record.ID, entity.StatusSkippedNoActiveDevice, "", env.now).
		Return(nil)
	env.logRepo.EXPECT().CreateLog(mock.Anything, mock.Anything).Return(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
}

func TestDispatchService_RunDispatchCycle_BroadcastRecordSkips(t *testing.T) {
	env := createTestDispatchService(t, false)

	record := dueRecord(nil, entity.TypeDebug)

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(true, nil)
	env.notifRepo.EXPECT().
		MarkNotificationTerminal(mock.Anything, record.ID, entity.StatusSkippedNoActiveDevice, "", env.now).
		Return(nil)
	env.logRepo.EXPECT().CreateLog(mock.Anything, mock.Anything).Return(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
}

func TestDispatchService_RunDispatchCycle_TransientErrorRearms(t *testing.T) {
	env := createTestDispatchService(t, false)

	userID := uuid.New()
	record := dueRecord(&userID, entity.TypeMorningReminder)
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-1", Language: "en", IsActive: true}

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(true, nil)
	env.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{device}, nil)
	env.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(&entity.User{ID: userID, DisplayName: "Amina"}, nil)
	env.sender.EXPECT().Send(mock.Anything, device, mock.Anything).Return(nil, errors.New("fcm unavailable"))
	env.notifRepo.EXPECT().
		RearmNotification(mock.Anything, record.ID, 1, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, id uuid.UUID, retries int, nextRetryAt time.Time, errorMessage string) {
			// First retry backs off base*2^0 with ±20% jitter.
			delay := nextRetryAt.Sub(env.now)
			assert.GreaterOrEqual(t, delay, 24*time.Second)
			assert.LessOrEqual(t, delay, 36*time.Second)
			assert.Contains(t, errorMessage, "fcm unavailable")
		}).
		Return(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Rearmed)
	assert.Zero(t, stats.Failed)
}

func TestDispatchService_RunDispatchCycle_UnregisteredTokenFailsPermanently(t *testing.T) {
	env := createTestDispatchService(t, false)

	userID := uuid.New()
	record := dueRecord(&userID, entity.TypeFajrMissed)
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "dead-token", Language: "en", IsActive: true}

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(true, nil)
	env.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{device}, nil)
	env.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(&entity.User{ID: userID, DisplayName: "Amina"}, nil)
	env.sender.EXPECT().Send(mock.Anything, device, mock.Anything).
		Return(nil, errors.WithMessage(service.ErrUnregisteredToken, "send failed"))
	env.deviceRepo.EXPECT().DeactivateDeviceByToken(mock.Anything, "dead-token").Return(nil)
	env.notifRepo.EXPECT().
		MarkNotificationTerminal(mock.Anything, record.ID, entity.StatusFailed, mock.Anything, env.now).
		Return(nil)
	env.logRepo.EXPECT().CreateLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, log *entity.NotificationLog) {
			assert.Equal(t, entity.ResultFailed, log.Result)
		}).
		Return(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
	assert.Zero(t, stats.Rearmed)
}

func TestDispatchService_RunDispatchCycle_RetryBudgetExhausted(t *testing.T) {
	env := createTestDispatchService(t, false)

	userID := uuid.New()
	record := dueRecord(&userID, entity.TypeMorningReminder)
	record.Retries = 2 // third attempt is the last
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-1", Language: "en", IsActive: true}

	env.expectQuietCycle([]*entity.ScheduledNotification{record})
	env.notifRepo.EXPECT().ClaimNotification(mock.Anything, record.ID, env.now).Return(true, nil)
	env.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{device}, nil)
	env.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(&entity.User{ID: userID, DisplayName: "Amina"}, nil)
	env.sender.EXPECT().Send(mock.Anything, device, mock.Anything).Return(nil, errors.New("fcm unavailable"))
	env.notifRepo.EXPECT().
		MarkNotificationTerminal(mock.Anything, record.ID, entity.StatusFailed, mock.Anything, env.now).
		Return(nil)
	env.logRepo.EXPECT().CreateLog(mock.Anything, mock.Anything).Return(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
	assert.Zero(t, stats.Rearmed)
}

func TestDispatchService_RunDispatchCycle_LockHeldElsewhereSkipsCycle(t *testing.T) {
	env := createTestDispatchService(t, true)

	env.cycleLock.EXPECT().TryAcquire(mock.Anything).Return(false, nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Due)
	assert.Zero(t, stats.Claimed)
}

func TestDispatchService_RunDispatchCycle_LockAcquiredAndReleased(t *testing.T) {
	env := createTestDispatchService(t, true)

	env.cycleLock.EXPECT().TryAcquire(mock.Anything).Return(true, nil)
	env.cycleLock.EXPECT().Release(mock.Anything).Return(nil)
	env.expectQuietCycle(nil)

	stats, err := env.service.RunDispatchCycle(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Due)
}
