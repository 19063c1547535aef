package game

import "time"

// TickClock is a fixed-rate Clock backed by the wall clock.
type TickClock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewTickClock() *TickClock {
	return &TickClock{now: time.Now, sleep: time.Sleep}
}

// Wait sleeps until one interval of 1/rate seconds has passed since the
// previous tick. A loop that fell behind is not made to catch up.
func (c *TickClock) Wait(rate int) {
	if rate < 1 {
		rate = 1
	}
	interval := time.Second / time.Duration(rate)

	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	next := c.last.Add(interval)
	if d := next.Sub(now); d > 0 {
		c.sleep(d)
		c.last = next
		return
	}
	c.last = now
}
