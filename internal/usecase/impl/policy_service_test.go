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
	"minaret/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPolicyService(t *testing.T) (
	usecase.PolicyUsecase,
	*mockRepo.MockPreferenceRepository,
	*mockRepo.MockNotificationLogRepository,
) {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	logRepo := mockRepo.NewMockNotificationLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewPolicyService(logger, preferenceRepo, logRepo, &config.Config{
		Policy: config.PolicyConfig{MaxSendsPerDay: 10},
	})

	return service, preferenceRepo, logRepo
}

func quietHoursPreference(userID uuid.UUID, start, end string, tz string) *entity.UserNotificationPreference {
	pref := entity.DefaultPreference(userID)
	startT, _ := entity.ParseTimeOfDay(start)
	endT, _ := entity.ParseTimeOfDay(end)
	pref.QuietHoursStart = &startT
	pref.QuietHoursEnd = &endT
	pref.TimeZone = tz

	return pref
}

func TestPolicyService_Evaluate_NoStoredPreferenceAllows(t *testing.T) {
	service, preferenceRepo, logRepo := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	logRepo.EXPECT().CountSentForUser(ctx, userID, at.Add(-24*time.Hour)).Return(int64(3), nil)

	decision, err := service.Evaluate(ctx, userID, entity.TypeMorningReminder, at)

	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionAllow, decision)
}

func TestPolicyService_Evaluate_PreferenceToggleDenies(t *testing.T) {
	service, preferenceRepo, _ := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pref := entity.DefaultPreference(userID)
	pref.HadithDaily = false

	preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil)

	decision, err := service.Evaluate(ctx, userID, entity.TypeHadithDaily, time.Now().UTC())

	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionDenyPreference, decision)
}

func TestPolicyService_Evaluate_QuietHoursWrapMidnight(t *testing.T) {
	service, preferenceRepo, logRepo := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pref := quietHoursPreference(userID, "22:00", "06:00", "UTC")

	cases := []struct {
		name     string
		at       time.Time
		decision usecase.PolicyDecision
	}{
		{"inside before midnight", time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC), usecase.DecisionDenyQuietHours},
		{"inside after midnight", time.Date(2026, 3, 10, 5, 59, 0, 0, time.UTC), usecase.DecisionDenyQuietHours},
		{"window end is exclusive", time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC), usecase.DecisionAllow},
		{"outside the window", time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), usecase.DecisionAllow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil).Once()
			if tc.decision == usecase.DecisionAllow {
				logRepo.EXPECT().CountSentForUser(ctx, userID, tc.at.Add(-24*time.Hour)).Return(int64(0), nil).Once()
			}

			decision, err := service.Evaluate(ctx, userID, entity.TypeEveningReminder, tc.at)

			require.NoError(t, err)
			assert.Equal(t, tc.decision, decision)
		})
	}
}

func TestPolicyService_Evaluate_QuietHoursUseUserTimeZone(t *testing.T) {
	service, preferenceRepo, _ := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pref := quietHoursPreference(userID, "22:00", "06:00", "Asia/Riyadh")

	preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil)

	// 20:30 UTC is 23:30 in Riyadh (UTC+3), inside the window.
	at := time.Date(2026, 3, 10, 20, 30, 0, 0, time.UTC)
	decision, err := service.Evaluate(ctx, userID, entity.TypeMotivationDaily, at)

	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionDenyQuietHours, decision)
}

func TestPolicyService_Evaluate_DailyCapDenies(t *testing.T) {
	service, preferenceRepo, logRepo := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(entity.DefaultPreference(userID), nil)
	logRepo.EXPECT().CountSentForUser(ctx, userID, at.Add(-24*time.Hour)).Return(int64(10), nil)

	decision, err := service.Evaluate(ctx, userID, entity.TypeMorningReminder, at)

	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionDenyDailyLimit, decision)
}

func TestPolicyService_Evaluate_EscalationBypassesQuietHoursAndCap(t *testing.T) {
	service, preferenceRepo, _ := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pref := quietHoursPreference(userID, "22:00", "06:00", "UTC")

	// No CountSentForUser expectation: the cap check must not run.
	preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil)

	at := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	decision, err := service.Evaluate(ctx, userID, entity.TypeEscalation, at)

	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionAllow, decision)
}

func TestPolicyService_Evaluate_EscalationStillRespectsToggle(t *testing.T) {
	service, preferenceRepo, _ := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pref := entity.DefaultPreference(userID)
	pref.Escalation = false

	preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil)

	decision, err := service.Evaluate(ctx, userID, entity.TypeEscalation, time.Now().UTC())

	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionDenyPreference, decision)
}

func TestPolicyService_Evaluate_UnknownType(t *testing.T) {
	service, _, _ := createTestPolicyService(t)

	_, err := service.Evaluate(context.Background(), uuid.New(), entity.NotificationType("bogus"), time.Now().UTC())

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrUnknownNotificationType)
}

func TestPolicyService_IsWithinQuietHours_StartEqualsEndDisables(t *testing.T) {
	service, preferenceRepo, _ := createTestPolicyService(t)

	ctx := context.Background()
	userID := uuid.New()
	pref := quietHoursPreference(userID, "08:00", "08:00", "UTC")

	preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil)

	within, err := service.IsWithinQuietHours(ctx, userID, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.False(t, within)
}
