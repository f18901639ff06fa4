package usecase

import (
	"context"
	"time"

	"minaret/internal/domain/entity"

	"github.com/google/uuid"
)

// PolicyDecision is the outcome of evaluating send policy for one record.
type PolicyDecision string

const (
	// DecisionAllow permits the send.
	DecisionAllow PolicyDecision = "allow"
	// DecisionDenyPreference blocks the send because the category toggle is off.
	DecisionDenyPreference PolicyDecision = "deny_preference"
	// DecisionDenyQuietHours blocks the send because of the quiet hours window.
	DecisionDenyQuietHours PolicyDecision = "deny_quiet_hours"
	// DecisionDenyDailyLimit blocks the send because the daily cap is reached.
	DecisionDenyDailyLimit PolicyDecision = "deny_daily_limit"
)

// SkipStatus maps a deny decision to the terminal status the dispatch worker
// records. Daily-cap denials count as preference skips: both are deliberate
// user-protecting policy outcomes.
func (d PolicyDecision) SkipStatus() entity.NotificationStatus {
	if d == DecisionDenyQuietHours {
		return entity.StatusSkippedQuietHours
	}

	return entity.StatusSkippedUserPreference
}

// PolicyUsecase decides whether a send is currently permitted for a user and
// notification type. The three checks are independent and deny wins.
type PolicyUsecase interface {
	// Evaluate runs all checks for (user, type) at the given time.
	Evaluate(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, at time.Time) (PolicyDecision, error)

	// IsWithinQuietHours reports whether at falls inside the user's quiet
	// hours window, evaluated in the user's local time zone. The window may
	// wrap midnight.
	IsWithinQuietHours(ctx context.Context, userID uuid.UUID, at time.Time) (bool, error)

	// HasExceededDailyLimit reports whether the user already received the
	// configured maximum of notifications in the trailing 24 hours.
	HasExceededDailyLimit(ctx context.Context, userID uuid.UUID, at time.Time) (bool, error)
}
