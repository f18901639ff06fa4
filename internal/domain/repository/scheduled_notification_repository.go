// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"minaret/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for scheduled notification persistence.
var (
	// ErrNotificationNotFound is returned when a scheduled notification is not found.
	ErrNotificationNotFound = errors.New("scheduled notification not found")
	// ErrDuplicateUniqueKey is returned when an enqueue collides with an existing unique key.
	ErrDuplicateUniqueKey = errors.New("scheduled notification unique key already exists")
	// ErrNotClaimed is returned when a terminal transition or re-arm targets a
	// record that is not in processing state.
	ErrNotClaimed = errors.New("scheduled notification is not claimed for processing")
)

// ScheduledNotificationRepository defines the interface for the durable
// notification record store. Records move through the state machine via the
// guarded transitions below and are never physically deleted.
type ScheduledNotificationRepository interface {
	// CreateNotification persists a new pending record. Returns
	// ErrDuplicateUniqueKey when the unique key is already taken.
	CreateNotification(ctx context.Context, notification *entity.ScheduledNotification) error

	// FindNotificationByID retrieves a record by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error)

	// FindNotificationByUniqueKey retrieves a record by its idempotency key.
	FindNotificationByUniqueKey(ctx context.Context, uniqueKey string) (*entity.ScheduledNotification, error)

	// FindDueNotifications returns up to limit pending records eligible at now
	// (execute_at reached and, for re-armed records, next_retry_at reached),
	// ordered by execute_at ascending.
	FindDueNotifications(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledNotification, error)

	// ClaimNotification atomically transitions pending -> processing. Returns
	// false when another worker already moved the record (claim race loss).
	ClaimNotification(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)

	// MarkNotificationTerminal transitions processing -> the given terminal
	// status, setting processed_at and the error message (empty on success and
	// skips). Returns ErrNotClaimed when the record is not in processing state.
	MarkNotificationTerminal(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, errorMessage string, processedAt time.Time) error

	// RearmNotification transitions processing -> pending for a later retry,
	// recording the attempt count, next retry time and last error. Returns
	// ErrNotClaimed when the record is not in processing state.
	RearmNotification(ctx context.Context, id uuid.UUID, retries int, nextRetryAt time.Time, errorMessage string) error

	// ReclaimStaleNotifications moves processing records whose last update is
	// older than stuckSince back to pending, rescuing claims orphaned by a
	// crashed worker. Returns the number of reclaimed records.
	ReclaimStaleNotifications(ctx context.Context, stuckSince time.Time, now time.Time) (int64, error)
}
