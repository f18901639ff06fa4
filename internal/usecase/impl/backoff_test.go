package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryBackoff_DoublesWithJitter(t *testing.T) {
	base := 30 * time.Second
	max := time.Hour

	cases := []struct {
		retries int
		nominal time.Duration
	}{
		{1, 30 * time.Second},
		{2, time.Minute},
		{3, 2 * time.Minute},
		{0, 30 * time.Second}, // clamped to the first attempt
	}

	for _, tc := range cases {
		for range 50 {
			delay := retryBackoff(base, max, tc.retries)
			assert.GreaterOrEqual(t, delay, time.Duration(float64(tc.nominal)*0.8))
			assert.LessOrEqual(t, delay, time.Duration(float64(tc.nominal)*1.2))
		}
	}
}

func TestRetryBackoff_CapsAtMax(t *testing.T) {
	base := 30 * time.Second
	max := time.Hour

	for range 50 {
		delay := retryBackoff(base, max, 20)
		assert.GreaterOrEqual(t, delay, time.Duration(float64(max)*0.8))
		assert.LessOrEqual(t, delay, time.Duration(float64(max)*1.2))
	}
}
