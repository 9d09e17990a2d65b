package engine

import (
	"time"
)

// Clock is the frame clock. Elapsed feeds the sprite timer uniform and is
// monotonically non-decreasing; Tick is called once per frame, between draws.
type Clock struct {
	Start time.Time
	Time  time.Time
	Dt    time.Duration
}

func NewClock() *Clock {
	now := time.Now()
	return &Clock{
		Start: now,
		Time:  now,
		Dt:    0,
	}
}

func (c *Clock) Tick() {
	now := time.Now()
	c.Dt = now.Sub(c.Time)
	c.Time = now
}

// Elapsed returns the seconds since the clock started.
func (c *Clock) Elapsed() float32 {
	return float32(c.Time.Sub(c.Start).Seconds())
}
