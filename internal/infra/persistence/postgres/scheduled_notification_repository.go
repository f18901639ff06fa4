package postgres

import (
	"context"
	"fmt"
	"time"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	"minaret/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// scheduledNotificationRepository implements the repository.ScheduledNotificationRepository interface.
type scheduledNotificationRepository struct {
	db *gorm.DB
}

// NewScheduledNotificationRepository is the constructor for scheduledNotificationRepository.
func NewScheduledNotificationRepository(db *gorm.DB) repository.ScheduledNotificationRepository {
	return &scheduledNotificationRepository{
		db: db,
	}
}

// CreateNotification persists a new pending record.
func (repo *scheduledNotificationRepository) CreateNotification(ctx context.Context, notification *entity.ScheduledNotification) error {
	notificationM := fromScheduledNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUniqueKey
		}

		return errors.Wrap(err, "failed to create scheduled notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationByID retrieves a record by its unique ID.
func (repo *scheduledNotificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error) {
	var notificationM model.ScheduledNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find scheduled notification by ID")
	}

	return toScheduledNotificationDomain(&notificationM), nil
}

// FindNotificationByUniqueKey retrieves a record by its idempotency key.
func (repo *scheduledNotificationRepository) FindNotificationByUniqueKey(ctx context.Context, uniqueKey string) (*entity.ScheduledNotification, error) {
	var notificationM model.ScheduledNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("unique_key = ?", uniqueKey).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find scheduled notification by unique key")
	}

	return toScheduledNotificationDomain(&notificationM), nil
}

// FindDueNotifications returns pending records eligible at now, oldest first.
// Re-armed records stay invisible until their next_retry_at passes.
func (repo *scheduledNotificationRepository) FindDueNotifications(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledNotification, error) {
	var notificationModels []*model.ScheduledNotificationModel

	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.StatusPending)).
		Where("execute_at <= ?", now).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", now).
		Order("execute_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due notifications")
	}

	notifications := make([]*entity.ScheduledNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toScheduledNotificationDomain(notificationM))
	}

	return notifications, nil
}

// ClaimNotification atomically transitions pending -> processing. The status
// guard in the WHERE clause makes concurrent claims race-safe: exactly one
// worker sees RowsAffected == 1.
func (repo *scheduledNotificationRepository) ClaimNotification(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"status":     string(entity.StatusProcessing),
			"updated_at": now,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim scheduled notification")
	}

	return result.RowsAffected == 1, nil
}

// MarkNotificationTerminal transitions processing -> the given terminal status.
func (repo *scheduledNotificationRepository) MarkNotificationTerminal(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, errorMessage string, processedAt time.Time) error {
	if !status.IsTerminal() {
		return errors.Errorf("status %q is not terminal", status)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusProcessing)).
		Updates(map[string]interface{}{
			"status":        string(status),
			"error_message": errorMessage,
			"processed_at":  processedAt,
			"updated_at":    processedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark scheduled notification terminal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotClaimed
	}

	return nil
}

// RearmNotification transitions processing -> pending for a later retry.
func (repo *scheduledNotificationRepository) RearmNotification(ctx context.Context, id uuid.UUID, retries int, nextRetryAt time.Time, errorMessage string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusProcessing)).
		Updates(map[string]interface{}{
			"status":        string(entity.StatusPending),
			"retries":       retries,
			"next_retry_at": nextRetryAt,
			"error_message": errorMessage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to re-arm scheduled notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotClaimed
	}

	return nil
}

// ReclaimStaleNotifications rescues processing records orphaned by a crashed
// worker, moving them back to pending so the next cycle picks them up.
func (repo *scheduledNotificationRepository) ReclaimStaleNotifications(ctx context.Context, stuckSince time.Time, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("status = ? AND updated_at < ?", string(entity.StatusProcessing), stuckSince).
		Updates(map[string]interface{}{
			"status":     string(entity.StatusPending),
			"updated_at": now,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reclaim stale notifications")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toScheduledNotificationDomain converts a GORM ScheduledNotificationModel to a domain ScheduledNotification entity.
func toScheduledNotificationDomain(data *model.ScheduledNotificationModel) *entity.ScheduledNotification {
	if data == nil {
		return nil
	}

	return &entity.ScheduledNotification{
		ID:           data.ID,
		UserID:       data.UserID,
		Type:         entity.NotificationType(data.Type),
		ExecuteAt:    data.ExecuteAt,
		Data:         jsonMapToPayload(data.Data),
		Status:       entity.NotificationStatus(data.Status),
		UniqueKey:    data.UniqueKey,
		ProcessedAt:  data.ProcessedAt,
		ErrorMessage: data.ErrorMessage,
		Retries:      data.Retries,
		MaxRetries:   data.MaxRetries,
		NextRetryAt:  data.NextRetryAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromScheduledNotificationDomain converts a domain ScheduledNotification entity to a GORM ScheduledNotificationModel.
func fromScheduledNotificationDomain(data *entity.ScheduledNotification) *model.ScheduledNotificationModel {
	if data == nil {
		return nil
	}

	return &model.ScheduledNotificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Type:         string(data.Type),
		ExecuteAt:    data.ExecuteAt,
		Data:         payloadToJSONMap(data.Data),
		Status:       string(data.Status),
		UniqueKey:    data.UniqueKey,
		ProcessedAt:  data.ProcessedAt,
		ErrorMessage: data.ErrorMessage,
		Retries:      data.Retries,
		MaxRetries:   data.MaxRetries,
		NextRetryAt:  data.NextRetryAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// payloadToJSONMap converts a string payload map to the jsonb column type.
func payloadToJSONMap(data map[string]string) datatypes.JSONMap {
	if data == nil {
		return nil
	}

	jsonMap := make(datatypes.JSONMap, len(data))
	for key, value := range data {
		jsonMap[key] = value
	}

	return jsonMap
}

// jsonMapToPayload converts a jsonb column value back to the string payload map.
// Non-string values written by other tooling are stringified rather than dropped.
func jsonMapToPayload(jsonMap datatypes.JSONMap) map[string]string {
	if jsonMap == nil {
		return nil
	}

	data := make(map[string]string, len(jsonMap))
	for key, value := range jsonMap {
		if str, ok := value.(string); ok {
			data[key] = str

			continue
		}
		data[key] = fmt.Sprintf("%v", value)
	}

	return data
}
