// Package clock provides the system implementation of the Clock service.
package clock

import (
	"time"

	"minaret/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
