package watch

import (
	"math/rand"
	"time"
)

// backoff implements exponential backoff with jitter.
type backoff struct {
	max      time.Duration
	current  time.Duration
	attempts int
}

func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{
		max:     max,
		current: initial,
	}
}

// Next returns the delay before the next attempt and increases it.
func (b *backoff) Next() time.Duration {
	// Add jitter: ±20%
	jitter := float64(b.current) * 0.2 * (rand.Float64()*2 - 1)
	d := time.Duration(float64(b.current) + jitter)

	b.attempts++
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	return d
}

// Attempts returns how many delays have been handed out.
func (b *backoff) Attempts() int {
	return b.attempts
}
