package postgres

import (
	"context"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	"minaret/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindPreferenceByUser retrieves the preference row for a user.
func (repo *preferenceRepository) FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.UserNotificationPreference, error) {
	var preferenceM model.UserNotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&preferenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preference by user")
	}

	return toPreferenceDomain(&preferenceM)
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM UserNotificationPreferenceModel to a domain UserNotificationPreference entity.
func toPreferenceDomain(data *model.UserNotificationPreferenceModel) (*entity.UserNotificationPreference, error) {
	if data == nil {
		return nil, nil
	}

	preference := &entity.UserNotificationPreference{
		ID:              data.ID,
		UserID:          data.UserID,
		Morning:         data.Morning,
		Evening:         data.Evening,
		FajrMissed:      data.FajrMissed,
		Escalation:      data.Escalation,
		HadithDaily:     data.HadithDaily,
		MotivationDaily: data.MotivationDaily,
		EventsNew:       data.EventsNew,
		EventsReminder:  data.EventsReminder,
		TimeZone:        data.TimeZone,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.QuietHoursStart != nil {
		start, err := entity.ParseTimeOfDay(*data.QuietHoursStart)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stored quiet hours start")
		}
		preference.QuietHoursStart = &start
	}

	if data.QuietHoursEnd != nil {
		end, err := entity.ParseTimeOfDay(*data.QuietHoursEnd)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stored quiet hours end")
		}
		preference.QuietHoursEnd = &end
	}

	return preference, nil
}
