package repository

import (
	"context"

	"minaret/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the device registry access the pipeline needs.
type DeviceRepository interface {
	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDeviceByToken marks the device holding the given push token
	// inactive, used when the provider reports the token unregistered.
	DeactivateDeviceByToken(ctx context.Context, fcmToken string) error
}
