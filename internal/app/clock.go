package app

import "tank-battle/internal/config"

// Clock is the simulation clock. It only moves when stepped, so pausing is
// just not stepping it.
type Clock struct {
	ticks int64
}

// Step advances one tick and returns the new time in milliseconds.
func (c *Clock) Step() int64 {
	c.ticks++
	return c.Now()
}

// Now returns the current time in milliseconds.
func (c *Clock) Now() int64 {
	return config.TickMillis(c.ticks)
}

// Ticks returns how many ticks have elapsed.
func (c *Clock) Ticks() int64 {
	return c.ticks
}
