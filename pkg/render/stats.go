package render

import (
	"fmt"
	"math"
	"time"
)

// FrameCounter measures frames per second over one-second windows.
type FrameCounter struct {
	fps    float64
	frames int
	start  time.Time
}

// NewFrameCounter starts counting at now.
func NewFrameCounter(now time.Time) *FrameCounter {
	return &FrameCounter{start: now}
}

// Tick records a finished frame. It reports true when the rate was
// refreshed.
func (c *FrameCounter) Tick(now time.Time) bool {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < time.Second {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

// FPS returns the last measured rate.
func (c *FrameCounter) FPS() float64 {
	return c.fps
}

// Label formats the rate as "<n> FPS".
func (c *FrameCounter) Label() string {
	return fmt.Sprintf("%d FPS", int(math.Round(c.fps)))
}
