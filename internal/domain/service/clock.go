package service

import "time"

// Clock abstracts the current time so quiet-hours and retry-timing logic can
// be tested deterministically.
type Clock interface {
	Now() time.Time
}
