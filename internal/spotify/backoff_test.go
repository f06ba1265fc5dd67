package spotify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoffStaysWithinBounds(t *testing.T) {
	assert := assert.New(t)

	backoff := NewExponentialBackoff(100*time.Millisecond, time.Second, 4)

	for i := 0; i < 20; i++ {
		ceiling := 100 * time.Millisecond * time.Duration(1<<min(i, 4))
		if ceiling > time.Second {
			ceiling = time.Second
		}

		delay := backoff.Delay()
		assert.GreaterOrEqual(delay, time.Duration(0))
		assert.LessOrEqual(delay, ceiling)
	}
}

func TestExponentialBackoffReset(t *testing.T) {
	assert := assert.New(t)

	backoff := NewExponentialBackoff(100*time.Millisecond, time.Second, 4)

	for i := 0; i < 10; i++ {
		backoff.Delay()
	}

	backoff.Reset()

	// After a reset the very first delay is again drawn from [0, base]
	assert.LessOrEqual(backoff.Delay(), 100*time.Millisecond)
}
