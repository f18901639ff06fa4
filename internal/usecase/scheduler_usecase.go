// Package usecase defines the application-level interfaces of the pipeline.
package usecase

import (
	"context"
	"time"

	"minaret/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleInput carries one enqueue request.
type ScheduleInput struct {
	// UserID targets a user; nil permits broadcast-style jobs.
	UserID *uuid.UUID
	// Type is the notification kind; must be a known type.
	Type entity.NotificationType
	// ExecuteAt is the earliest UTC time the job becomes eligible.
	ExecuteAt time.Time
	// Data is the opaque payload interpreted at render time.
	Data map[string]string
	// UniqueKey, when set, makes the enqueue idempotent: a second call with
	// the same key returns the existing record instead of creating another.
	UniqueKey *string
}

// SchedulerUsecase is the public enqueue entry point of the pipeline. It only
// writes the record store; policy and rendering are deferred to dispatch time
// since preferences and content can change between scheduling and execution.
type SchedulerUsecase interface {
	Schedule(ctx context.Context, input ScheduleInput) (uuid.UUID, error)
}
