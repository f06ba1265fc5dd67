package spotify

import (
	"math"
	"math/rand"
	"time"
)

// ExponentialBackoff yields the interval to wait before the next retry of a
// failed operation. Each delay is picked randomly between 0 and base*2^n,
// where n is the number of retries so far (capped at maxExp), and never
// exceeds maxDelay. The jitter keeps concurrent clients from retrying in
// lockstep.
type ExponentialBackoff struct {
	base     time.Duration
	maxDelay time.Duration
	maxExp   int
	retries  int
	random   *rand.Rand
}

func NewExponentialBackoff(base, maxDelay time.Duration, maxExp int) *ExponentialBackoff {
	return &ExponentialBackoff{
		base:     base,
		maxDelay: maxDelay,
		maxExp:   maxExp,
		random:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Delay returns the next interval to wait. It increments the retry counter.
func (b *ExponentialBackoff) Delay() time.Duration {
	exp := min(b.retries, b.maxExp)
	b.retries++

	ceiling := float64(b.base) * math.Pow(2, float64(exp))
	delay := time.Duration(b.random.Float64() * ceiling)

	if delay > b.maxDelay {
		return b.maxDelay
	}

	return delay
}

// Reset makes the next Delay start over from the base interval.
func (b *ExponentialBackoff) Reset() {
	b.retries = 0
}
