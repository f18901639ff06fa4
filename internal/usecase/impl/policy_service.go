// Package impl contains the implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"minaret/config"
	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	"minaret/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type policyService struct {
	logger         *slog.Logger
	preferenceRepo repository.PreferenceRepository
	logRepo        repository.NotificationLogRepository
	policyCfg      config.PolicyConfig
}

// NewPolicyService creates the privacy/policy evaluator.
func NewPolicyService(
	logger *slog.Logger,
	preferenceRepo repository.PreferenceRepository,
	logRepo repository.NotificationLogRepository,
	cfg *config.Config,
) usecase.PolicyUsecase {
	return &policyService{
		logger:         logger,
		preferenceRepo: preferenceRepo,
		logRepo:        logRepo,
		policyCfg:      cfg.Policy,
	}
}

// Evaluate runs the preference, quiet hours and daily cap checks. The checks
// are independent and any deny wins.
func (s *policyService) Evaluate(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, at time.Time) (usecase.PolicyDecision, error) {
	desc, ok := entity.DescriptorFor(notificationType)
	if !ok {
		return "", errors.WithStack(usecase.ErrUnknownNotificationType)
	}

	pref, err := s.loadPreference(ctx, userID)
	if err != nil {
		return "", err
	}

	if !pref.Allows(desc.Category) {
		return usecase.DecisionDenyPreference, nil
	}

	// Critical types (escalations, operational debug) bypass quiet hours and
	// the daily cap but never a preference toggle.
	if desc.PolicyExempt {
		return usecase.DecisionAllow, nil
	}

	if withinQuietHours(pref, at) {
		return usecase.DecisionDenyQuietHours, nil
	}

	exceeded, err := s.exceededDailyLimit(ctx, userID, at)
	if err != nil {
		return "", err
	}
	if exceeded {
		return usecase.DecisionDenyDailyLimit, nil
	}

	return usecase.DecisionAllow, nil
}

// IsWithinQuietHours reports whether at falls inside the user's quiet hours
// window in their local time zone.
func (s *policyService) IsWithinQuietHours(ctx context.Context, userID uuid.UUID, at time.Time) (bool, error) {
	pref, err := s.loadPreference(ctx, userID)
	if err != nil {
		return false, err
	}

	return withinQuietHours(pref, at), nil
}

// HasExceededDailyLimit reports whether the user hit the trailing-24h cap.
func (s *policyService) HasExceededDailyLimit(ctx context.Context, userID uuid.UUID, at time.Time) (bool, error) {
	return s.exceededDailyLimit(ctx, userID, at)
}

func (s *policyService) loadPreference(ctx context.Context, userID uuid.UUID) (*entity.UserNotificationPreference, error) {
	pref, err := s.preferenceRepo.FindPreferenceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			// Preferences are opt-out: no stored row means allow everything.
			return entity.DefaultPreference(userID), nil
		}

		return nil, errors.Wrap(err, "failed to load notification preference")
	}

	return pref, nil
}

func (s *policyService) exceededDailyLimit(ctx context.Context, userID uuid.UUID, at time.Time) (bool, error) {
	if s.policyCfg.MaxSendsPerDay <= 0 {
		return false, nil
	}

	count, err := s.logRepo.CountSentForUser(ctx, userID, at.Add(-24*time.Hour))
	if err != nil {
		return false, errors.Wrap(err, "failed to count recent sends")
	}

	return count >= int64(s.policyCfg.MaxSendsPerDay), nil
}

// withinQuietHours evaluates the quiet hours window at the given instant,
// converted to the preference's time zone. A window whose start is after its
// end wraps midnight; start equal to end means the window is disabled.
func withinQuietHours(pref *entity.UserNotificationPreference, at time.Time) bool {
	if !pref.HasQuietHours() {
		return false
	}

	loc := time.UTC
	if pref.TimeZone != "" {
		if parsed, err := time.LoadLocation(pref.TimeZone); err == nil {
			loc = parsed
		}
	}

	local := at.In(loc)
	minute := local.Hour()*60 + local.Minute()
	start := pref.QuietHoursStart.MinuteOfDay()
	end := pref.QuietHoursEnd.MinuteOfDay()

	switch {
	case start == end:
		return false
	case start < end:
		return minute >= start && minute < end
	default:
		// Window spans midnight, e.g. 22:00-06:00.
		return minute >= start || minute < end
	}
}
