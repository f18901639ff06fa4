package repository

import (
	"context"

	"minaret/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPreferenceNotFound is returned when a user has no stored preference row.
// Callers treat the absence as allow-all; preferences are opt-out.
var ErrPreferenceNotFound = errors.New("notification preference not found")

// PreferenceRepository defines read access to user notification preferences.
// Writes belong to the user-settings surface outside this core.
type PreferenceRepository interface {
	// FindPreferenceByUser retrieves the preference row for a user.
	FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.UserNotificationPreference, error)
}
