package impl

import (
	"math/rand/v2"
	"time"
)

// retryBackoff returns the delay before the given retry attempt (1-based):
// base * 2^(retries-1), capped at max, with ±20% jitter so that records
// failing together do not come due together again.
func retryBackoff(base, max time.Duration, retries int) time.Duration {
	if retries < 1 {
		retries = 1
	}

	delay := base
	for i := 1; i < retries; i++ {
		delay *= 2
		if delay >= max {
			delay = max

			break
		}
	}
	if delay > max {
		delay = max
	}

	jitter := 0.8 + 0.4*rand.Float64()

	return time.Duration(float64(delay) * jitter)
}
