package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"minaret/config"
	"minaret/internal/domain/entity"
	"minaret/internal/domain/repository"
	"minaret/internal/domain/service"
	"minaret/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type dispatchService struct {
	logger      *slog.Logger
	dispatchCfg config.DispatchConfig
	notifRepo   repository.ScheduledNotificationRepository
	logRepo     repository.NotificationLogRepository
	deviceRepo  repository.DeviceRepository
	userRepo    repository.UserRepository
	policy      usecase.PolicyUsecase
	builder     usecase.MessageBuilder
	sender      service.PushSender
	clock       service.Clock
	cycleLock   service.CycleLock // nil when redis is not configured

	// running guards against overlapping cycles within this process.
	running atomic.Bool
}

// NewDispatchService creates the dispatch worker that drives claimed records
// through policy, rendering, delivery and state transition.
func NewDispatchService(
	logger *slog.Logger,
	cfg *config.Config,
	notifRepo repository.ScheduledNotificationRepository,
	logRepo repository.NotificationLogRepository,
	deviceRepo repository.DeviceRepository,
	userRepo repository.UserRepository,
	policy usecase.PolicyUsecase,
	builder usecase.MessageBuilder,
	sender service.PushSender,
	clock service.Clock,
	cycleLock service.CycleLock,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:      logger,
		dispatchCfg: cfg.Dispatch,
		notifRepo:   notifRepo,
		logRepo:     logRepo,
		deviceRepo:  deviceRepo,
		userRepo:    userRepo,
		policy:      policy,
		builder:     builder,
		sender:      sender,
		clock:       clock,
		cycleLock:   cycleLock,
	}
}

// cycleCounters collects per-record outcomes across the fan-out goroutines.
type cycleCounters struct {
	claimed   atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	rearmed   atomic.Int64
	skipped   atomic.Int64
}

// RunDispatchCycle claims due records and processes each one exactly once per
// claim. One record's failure never blocks the rest of the batch, and the
// cycle cooperates with context cancellation: unfinished claims are left in
// processing state and rescued by the stale-claim watchdog.
func (s *dispatchService) RunDispatchCycle(ctx context.Context) (*usecase.CycleStats, error) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug("dispatch cycle already running, skipping")

		return &usecase.CycleStats{}, nil
	}
	defer s.running.Store(false)

	if s.cycleLock != nil {
		acquired, err := s.cycleLock.TryAcquire(ctx)
		if err != nil {
			// The per-record claim keeps concurrent instances correct, so a
			// lock failure downgrades to a warning instead of skipping work.
			s.logger.Warn("cycle lock unavailable, proceeding without it", slog.Any("error", err))
		} else if !acquired {
			s.logger.Debug("another instance holds the dispatch cycle lock, skipping")

			return &usecase.CycleStats{}, nil
		} else {
			defer func() {
				if releaseErr := s.cycleLock.Release(context.WithoutCancel(ctx)); releaseErr != nil {
					s.logger.Warn("failed to release cycle lock", slog.Any("error", releaseErr))
				}
			}()
		}
	}

	now := s.clock.Now().UTC()
	stats := &usecase.CycleStats{}

	reclaimed, err := s.notifRepo.ReclaimStaleNotifications(ctx, now.Add(-s.dispatchCfg.StaleClaimTimeout), now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reclaim stale notifications")
	}
	if reclaimed > 0 {
		s.logger.Warn("reclaimed stale processing notifications", slog.Int64("count", reclaimed))
	}
	stats.Reclaimed = int(reclaimed)

	due, err := s.notifRepo.FindDueNotifications(ctx, now, s.dispatchCfg.BatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select due notifications")
	}
	stats.Due = len(due)

	var counters cycleCounters
	group := new(errgroup.Group)
	group.SetLimit(s.dispatchCfg.Workers)

	for _, record := range due {
		group.Go(func() error {
			s.processRecord(ctx, record, &counters)

			return nil
		})
	}
	_ = group.Wait()

	stats.Claimed = int(counters.claimed.Load())
	stats.Succeeded = int(counters.succeeded.Load())
	stats.Failed = int(counters.failed.Load())
	stats.Rearmed = int(counters.rearmed.Load())
	stats.Skipped = int(counters.skipped.Load())

	if stats.Due > 0 {
		s.logger.Info("dispatch cycle finished",
			slog.Int("due", stats.Due),
			slog.Int("claimed", stats.Claimed),
			slog.Int("succeeded", stats.Succeeded),
			slog.Int("failed", stats.Failed),
			slog.Int("rearmed", stats.Rearmed),
			slog.Int("skipped", stats.Skipped),
		)
	}

	return stats, nil
}

// processRecord runs the claim-then-process sequence for one record. Panics
// and unclassified errors are contained here and handled as transient
// failures; nothing propagates to the cycle driver.
func (s *dispatchService) processRecord(ctx context.Context, record *entity.ScheduledNotification, counters *cycleCounters) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while processing notification",
				slog.String("id", record.ID.String()),
				slog.Any("panic", r),
			)
			s.finishFailure(context.WithoutCancel(ctx), record, errors.Errorf("panic: %v", r), "", false, counters)
		}
	}()

	if ctx.Err() != nil {
		return
	}

	now := s.clock.Now().UTC()

	claimed, err := s.notifRepo.ClaimNotification(ctx, record.ID, now)
	if err != nil {
		s.logger.Error("failed to claim notification",
			slog.String("id", record.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	if !claimed {
		// Claim race loss: another worker already owns the record.
		return
	}
	counters.claimed.Add(1)

	// Records without a target user have no device audience to resolve; they
	// terminate as undeliverable.
	if record.UserID == nil {
		s.finishSkip(ctx, record, entity.StatusSkippedNoActiveDevice, counters)

		return
	}
	userID := *record.UserID

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		s.finishFailure(ctx, record, errors.Wrap(err, "device lookup failed"), "", false, counters)

		return
	}
	if len(devices) == 0 {
		s.finishSkip(ctx, record, entity.StatusSkippedNoActiveDevice, counters)

		return
	}

	decision, err := s.policy.Evaluate(ctx, userID, record.Type, now)
	if err != nil {
		s.finishFailure(ctx, record, errors.Wrap(err, "policy evaluation failed"), "", false, counters)

		return
	}
	if decision != usecase.DecisionAllow {
		s.finishSkip(ctx, record, decision.SkipStatus(), counters)

		return
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Account is gone; nothing left to deliver to.
			s.finishSkip(ctx, record, entity.StatusSkippedNoActiveDevice, counters)

			return
		}
		s.finishFailure(ctx, record, errors.Wrap(err, "user lookup failed"), "", false, counters)

		return
	}

	s.deliver(ctx, record, user, devices, counters)
}

// deliver renders and sends the message to every active device. The record
// succeeds when at least one device accepted it; a transient error on any
// device re-arms the record unless another device already succeeded.
func (s *dispatchService) deliver(ctx context.Context, record *entity.ScheduledNotification, user *entity.User, devices []*entity.UserDevice, counters *cycleCounters) {
	var (
		receipt      *service.PushReceipt
		collapseKey  string
		transientErr error
		permanentErr error
	)

	for _, device := range devices {
		message, err := s.builder.Build(user, device, record.Type, record.Data)
		if err != nil {
			// A payload that cannot render will not render on retry either.
			s.finishFailure(ctx, record, errors.Wrap(err, "message rendering failed"), collapseKey, true, counters)

			return
		}
		collapseKey = message.CollapseKey

		sendCtx, cancel := context.WithTimeout(ctx, s.dispatchCfg.SendTimeout)
		r, err := s.sender.Send(sendCtx, device, message)
		cancel()

		switch {
		case err == nil:
			if receipt == nil {
				receipt = r
			}
		case service.IsPermanentDeliveryError(err):
			permanentErr = err
			s.deactivateDevice(ctx, device)
		default:
			transientErr = err
		}
	}

	switch {
	case receipt != nil:
		s.finishSuccess(ctx, record, receipt, collapseKey, counters)
	case transientErr != nil:
		s.finishFailure(ctx, record, transientErr, collapseKey, false, counters)
	default:
		s.finishFailure(ctx, record, permanentErr, collapseKey, true, counters)
	}
}

// deactivateDevice retires a token the provider reported unregistered, so
// future cycles stop targeting it.
func (s *dispatchService) deactivateDevice(ctx context.Context, device *entity.UserDevice) {
	if err := s.deviceRepo.DeactivateDeviceByToken(ctx, device.FCMToken); err != nil {
		s.logger.Warn("failed to deactivate unregistered device",
			slog.String("device_id", device.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *dispatchService) finishSuccess(ctx context.Context, record *entity.ScheduledNotification, receipt *service.PushReceipt, collapseKey string, counters *cycleCounters) {
	now := s.clock.Now().UTC()

	if err := s.notifRepo.MarkNotificationTerminal(ctx, record.ID, entity.StatusSucceeded, "", now); err != nil {
		s.logger.Error("failed to mark notification succeeded",
			slog.String("id", record.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	counters.succeeded.Add(1)

	s.appendLog(ctx, record, entity.NotificationLog{
		Result:            entity.ResultSent,
		ProviderMessageID: receipt.ProviderMessageID,
		CollapsibleKey:    collapseKey,
		SentAt:            now,
		Retried:           record.Retries,
	})
}

func (s *dispatchService) finishSkip(ctx context.Context, record *entity.ScheduledNotification, status entity.NotificationStatus, counters *cycleCounters) {
	now := s.clock.Now().UTC()

	if err := s.notifRepo.MarkNotificationTerminal(ctx, record.ID, status, "", now); err != nil {
		s.logger.Error("failed to mark notification skipped",
			slog.String("id", record.ID.String()),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)

		return
	}
	counters.skipped.Add(1)

	s.appendLog(ctx, record, entity.NotificationLog{
		Result:  entity.ResultForSkip(status),
		SentAt:  now,
		Retried: record.Retries,
	})
}

// finishFailure handles both failure classes: permanent failures go straight
// to failed state, transient ones re-arm the record with backoff until the
// retry budget runs out.
func (s *dispatchService) finishFailure(ctx context.Context, record *entity.ScheduledNotification, cause error, collapseKey string, permanent bool, counters *cycleCounters) {
	now := s.clock.Now().UTC()
	retries := record.Retries + 1

	if !permanent && retries < record.MaxRetries {
		nextRetryAt := now.Add(retryBackoff(s.dispatchCfg.BackoffBase, s.dispatchCfg.BackoffMax, retries))
		if err := s.notifRepo.RearmNotification(ctx, record.ID, retries, nextRetryAt, cause.Error()); err != nil {
			s.logger.Error("failed to re-arm notification",
				slog.String("id", record.ID.String()),
				slog.Any("error", err),
			)

			return
		}
		counters.rearmed.Add(1)

		s.logger.Warn("notification delivery failed, re-armed",
			slog.String("id", record.ID.String()),
			slog.Int("retries", retries),
			slog.Time("next_retry_at", nextRetryAt),
			slog.Any("error", cause),
		)

		return
	}

	if err := s.notifRepo.MarkNotificationTerminal(ctx, record.ID, entity.StatusFailed, cause.Error(), now); err != nil {
		s.logger.Error("failed to mark notification failed",
			slog.String("id", record.ID.String()),
			slog.Any("error", err),
		)

		return
	}
	counters.failed.Add(1)

	retried := retries
	if permanent {
		retried = record.Retries
	}
	s.appendLog(ctx, record, entity.NotificationLog{
		Result:         entity.ResultFailed,
		ErrorMessage:   cause.Error(),
		CollapsibleKey: collapseKey,
		SentAt:         now,
		Retried:        retried,
	})
}

func (s *dispatchService) appendLog(ctx context.Context, record *entity.ScheduledNotification, log entity.NotificationLog) {
	log.ID = uuid.New()
	log.UserID = record.UserID
	log.Type = record.Type
	log.Payload = record.Data

	if err := s.logRepo.CreateLog(ctx, &log); err != nil {
		s.logger.Error("failed to append notification log",
			slog.String("notification_id", record.ID.String()),
			slog.Any("error", err),
		)
	}
}
