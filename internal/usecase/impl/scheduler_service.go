package impl

import (
	"context"
	"log/slog"

	"minaret/config"
	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	"minaret/internal/domain/service"
	"minaret/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type schedulerService struct {
	logger     *slog.Logger
	notifRepo  repository.ScheduledNotificationRepository
	clock      service.Clock
	maxRetries int
}

// NewSchedulerService creates the enqueue entry point of the pipeline.
func NewSchedulerService(
	logger *slog.Logger,
	notifRepo repository.ScheduledNotificationRepository,
	clock service.Clock,
	cfg *config.Config,
) usecase.SchedulerUsecase {
	return &schedulerService{
		logger:     logger,
		notifRepo:  notifRepo,
		clock:      clock,
		maxRetries: cfg.Dispatch.MaxRetries,
	}
}

// Schedule inserts a pending record, idempotently when a unique key is given:
// repeated calls with the same key return the first record's ID instead of
// creating duplicate work. Policy and rendering are deferred to dispatch time.
func (s *schedulerService) Schedule(ctx context.Context, input usecase.ScheduleInput) (uuid.UUID, error) {
	if _, ok := entity.DescriptorFor(input.Type); !ok {
		return uuid.Nil, errors.Wrapf(usecase.ErrUnknownNotificationType, "type %q", input.Type)
	}
	if input.ExecuteAt.IsZero() {
		return uuid.Nil, errors.New("executeAt must be set")
	}

	if input.UniqueKey != nil && *input.UniqueKey != "" {
		existing, err := s.notifRepo.FindNotificationByUniqueKey(ctx, *input.UniqueKey)
		if err == nil {
			return existing.ID, nil
		}
		if !errors.Is(err, repository.ErrNotificationNotFound) {
			return uuid.Nil, errors.Wrap(err, "failed to look up unique key")
		}
	}

	now := s.clock.Now().UTC()
	notification := &entity.ScheduledNotification{
		ID:         uuid.New(),
		UserID:     input.UserID,
		Type:       input.Type,
		ExecuteAt:  input.ExecuteAt.UTC(),
		Data:       input.Data,
		Status:     entity.StatusPending,
		UniqueKey:  normalizeUniqueKey(input.UniqueKey),
		Retries:    0,
		MaxRetries: s.maxRetries,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.notifRepo.CreateNotification(ctx, notification); err != nil {
		// Two concurrent enqueues with the same key can both miss the lookup;
		// the unique index decides the winner and we return its record.
		if errors.Is(err, repository.ErrDuplicateUniqueKey) && notification.UniqueKey != nil {
			existing, findErr := s.notifRepo.FindNotificationByUniqueKey(ctx, *notification.UniqueKey)
			if findErr != nil {
				return uuid.Nil, errors.Wrap(findErr, "failed to resolve unique key race")
			}

			return existing.ID, nil
		}

		return uuid.Nil, errors.Wrap(err, "failed to create scheduled notification")
	}

	s.logger.Debug("scheduled notification enqueued",
		slog.String("id", notification.ID.String()),
		slog.String("type", string(notification.Type)),
		slog.Time("execute_at", notification.ExecuteAt),
	)

	return notification.ID, nil
}

func normalizeUniqueKey(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}

	return key
}
