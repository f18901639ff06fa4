// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the lifecycle state of a scheduled notification.
// Transitions are monotonic: pending -> processing -> one of the terminal
// states, with the single exception of processing -> pending when a retry
// is re-armed. Terminal states never regress.
type NotificationStatus string

const (
	// StatusPending marks a record waiting to become due (or re-armed for retry).
	StatusPending NotificationStatus = "pending"
	// StatusProcessing marks a record claimed by a dispatch worker.
	StatusProcessing NotificationStatus = "processing"
	// StatusSucceeded marks a record delivered to the push provider.
	StatusSucceeded NotificationStatus = "succeeded"
	// StatusFailed marks a record that exhausted its retries or hit a permanent delivery error.
	StatusFailed NotificationStatus = "failed"
	// StatusSkippedNoActiveDevice marks a record whose user had no active device.
	StatusSkippedNoActiveDevice NotificationStatus = "skipped_no_active_device"
	// StatusSkippedQuietHours marks a record suppressed by the user's quiet hours.
	StatusSkippedQuietHours NotificationStatus = "skipped_quiet_hours"
	// StatusSkippedUserPreference marks a record suppressed by a preference toggle or the daily cap.
	StatusSkippedUserPreference NotificationStatus = "skipped_user_preference"
)

// IsTerminal reports whether the status is final. Terminal records are
// logically immutable audit trail entries; they are never deleted.
func (s NotificationStatus) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusSkippedNoActiveDevice, StatusSkippedQuietHours, StatusSkippedUserPreference:
		return true
	default:
		return false
	}
}

// ScheduledNotification is one unit of future delivery work.
type ScheduledNotification struct {
	ID           uuid.UUID          `json:"id"`            // The Global Unique Identifier (GUID) for the record.
	UserID       *uuid.UUID         `json:"user_id"`       // Target user; nil permits broadcast-style jobs.
	Type         NotificationType   `json:"type"`          // The notification kind.
	ExecuteAt    time.Time          `json:"execute_at"`    // Earliest UTC time the job becomes eligible.
	Data         map[string]string  `json:"data"`          // Opaque payload interpreted per type by the message builder.
	Status       NotificationStatus `json:"status"`        // Current lifecycle state.
	UniqueKey    *string            `json:"unique_key"`    // Optional idempotency key; globally unique when set.
	ProcessedAt  *time.Time         `json:"processed_at"`  // Set exactly when the record reaches a terminal state.
	ErrorMessage string             `json:"error_message"` // Last failure detail, cleared on success.
	Retries      int                `json:"retries"`       // Failed delivery attempts so far.
	MaxRetries   int                `json:"max_retries"`   // Attempt budget before the record goes to failed.
	NextRetryAt  *time.Time         `json:"next_retry_at"` // Earliest time a re-armed record becomes eligible again.
	CreatedAt    time.Time          `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time          `json:"updated_at"`    // Timestamp of the last state change.
}

// LogResult is the outcome recorded in the audit log for one delivery attempt.
type LogResult string

const (
	ResultSent                  LogResult = "sent"
	ResultFailed                LogResult = "failed"
	ResultSkippedNoActiveDevice LogResult = "skipped_no_active_device"
	ResultSkippedQuietHours     LogResult = "skipped_quiet_hours"
	ResultSkippedUserPreference LogResult = "skipped_user_preference"
)

// ResultForSkip maps a terminal skip status to its audit log result.
func ResultForSkip(status NotificationStatus) LogResult {
	switch status {
	case StatusSkippedQuietHours:
		return ResultSkippedQuietHours
	case StatusSkippedUserPreference:
		return ResultSkippedUserPreference
	default:
		return ResultSkippedNoActiveDevice
	}
}

// NotificationLog is an append-only audit record of one terminal delivery
// attempt outcome. Created once by the dispatch worker, never mutated after
// insert.
type NotificationLog struct {
	ID                uuid.UUID         `json:"id"`                  // The Global Unique Identifier (GUID) for the log entry.
	UserID            *uuid.UUID        `json:"user_id"`             // The user the attempt targeted, nil for broadcast jobs.
	Type              NotificationType  `json:"type"`                // The notification kind.
	Payload           map[string]string `json:"payload"`             // Snapshot of the record payload at dispatch time.
	Result            LogResult         `json:"result"`              // Outcome of the attempt.
	ProviderMessageID string            `json:"provider_message_id"` // Push provider message ID on success.
	ErrorMessage      string            `json:"error_message"`       // Failure detail when the attempt failed.
	CollapsibleKey    string            `json:"collapsible_key"`     // Collapse key the message was sent with.
	SentAt            time.Time         `json:"sent_at"`             // Timestamp of the terminal attempt.
	Retried           int               `json:"retried"`             // How many retries preceded this outcome.
}
