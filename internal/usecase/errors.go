package usecase

import "github.com/pkg/errors"

// ErrUnknownNotificationType is returned when a notification type has no
// registered descriptor. Surfaces as a client error on the enqueue path.
var ErrUnknownNotificationType = errors.New("unknown notification type")
