package postgres

import (
	"context"
	"time"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	"minaret/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationLogRepository implements the repository.NotificationLogRepository interface.
type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository is the constructor for notificationLogRepository.
func NewNotificationLogRepository(db *gorm.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{
		db: db,
	}
}

// CreateLog persists a single audit log entry.
func (repo *notificationLogRepository) CreateLog(ctx context.Context, log *entity.NotificationLog) error {
	logM := fromNotificationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification log")
	}

	// Update the entity with generated values
	log.ID = logM.ID

	return nil
}

// CountSentForUser counts sent entries for a user since the given time.
func (repo *notificationLogRepository) CountSentForUser(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationLogModel{}).
		Where("user_id = ? AND result = ? AND sent_at >= ?", userID, string(entity.ResultSent), since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sent notifications for user")
	}

	return count, nil
}

// CountByTypeAndResult returns grouped counts of entries with sent_at in [from, to).
func (repo *notificationLogRepository) CountByTypeAndResult(ctx context.Context, from, to time.Time) ([]repository.TypeResultCount, error) {
	var rows []struct {
		Type   string
		Result string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationLogModel{}).
		Select("type, result, COUNT(*) AS count").
		Where("sent_at >= ? AND sent_at < ?", from, to).
		Group("type, result").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notification logs by type and result")
	}

	counts := make([]repository.TypeResultCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.TypeResultCount{
			Type:   entity.NotificationType(row.Type),
			Result: entity.LogResult(row.Result),
			Count:  row.Count,
		})
	}

	return counts, nil
}

// --- Mapper Functions ---

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Type:              string(data.Type),
		Payload:           payloadToJSONMap(data.Payload),
		Result:            string(data.Result),
		ProviderMessageID: data.ProviderMessageID,
		ErrorMessage:      data.ErrorMessage,
		CollapsibleKey:    data.CollapsibleKey,
		SentAt:            data.SentAt,
		Retried:           data.Retried,
	}
}
