package clock

import "time"

// FakeClock is a Clock pinned to a fixed instant. The scheduler tests
// start one before a job card's reminder is due, then Advance it day by
// day until the card falls inside the reminder window.
type FakeClock struct {
	now time.Time
}

// NewFakeClock pins the clock at t, normalized to UTC like the real one.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the pinned instant forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
