package rcore

import (
	"math"
	"time"
)

// GetTime returns the seconds elapsed since the window was attached
func (c *CoreData) GetTime() float64 {
	if c.Platform == nil {
		return 0
	}

	return c.Platform.Time() - c.Time.Base
}

// SetTargetFPS limits the frame rate. Zero or a negative value removes the limit.
func (c *CoreData) SetTargetFPS(fps int) {
	if fps < 1 {
		c.Time.Target = 0
		return
	}

	c.Time.Target = 1.0 / float64(fps)
}

// GetFrameTime returns the duration of the last frame in seconds
func (c *CoreData) GetFrameTime() float32 {
	return float32(c.Time.Frame)
}

// GetFPS returns the frame rate, averaged over the last frames
func (c *CoreData) GetFPS() int {
	if c.Time.average <= 0 {
		return 0
	}

	return int(math.Round(1.0 / c.Time.average))
}

// WaitTime blocks the frame loop for the given number of seconds
func (c *CoreData) WaitTime(seconds float64) {
	if seconds <= 0 {
		return
	}

	sleep := c.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	sleep(time.Duration(seconds * float64(time.Second)))
}

// BeginFrame records the time spent since the end of the previous frame
// as update time.
func (c *CoreData) BeginFrame() {
	c.Time.Current = c.GetTime()
	c.Time.Update = c.Time.Current - c.Time.Previous
	c.Time.Previous = c.Time.Current
}

// EndFrame records the draw time, waits to reach the target frame time
// and collects the input for the next frame.
func (c *CoreData) EndFrame() {
	c.Time.Current = c.GetTime()
	c.Time.Draw = c.Time.Current - c.Time.Previous
	c.Time.Previous = c.Time.Current

	c.Time.Frame = c.Time.Update + c.Time.Draw

	if c.Time.Frame < c.Time.Target {
		c.WaitTime(c.Time.Target - c.Time.Frame)

		c.Time.Current = c.GetTime()
		waited := c.Time.Current - c.Time.Previous
		c.Time.Previous = c.Time.Current

		c.Time.Frame += waited
	}

	c.Time.updateAverage(c.Time.Frame)

	c.PollInputEvents()

	c.Time.FrameCounter++
}

func (t *Time) updateAverage(frame float64) {
	const window = 64

	if t.FrameCounter < window/2 {
		t.average = frame
	} else {
		t.average = ((window-1)*t.average + frame) / window
	}
}
