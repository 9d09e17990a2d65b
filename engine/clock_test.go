package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockElapsedIsMonotonic(t *testing.T) {
	clock := NewClock()

	prev := clock.Elapsed()
	for i := 0; i < 5; i++ {
		time.Sleep(time.Millisecond)
		clock.Tick()
		cur := clock.Elapsed()
		assert.GreaterOrEqual(t, cur, prev, "elapsed must never decrease")
		prev = cur
	}
}

func TestClockDt(t *testing.T) {
	clock := NewClock()
	assert.Equal(t, time.Duration(0), clock.Dt)

	time.Sleep(2 * time.Millisecond)
	clock.Tick()
	assert.Greater(t, clock.Dt, time.Duration(0))
}
