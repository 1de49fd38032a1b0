package app

import "time"

// fpsCounter counts frames and reports the rate once per interval
type fpsCounter struct {
	interval time.Duration
	frames   int
	last     time.Time
}

func newFPSCounter(start time.Time) *fpsCounter {
	return &fpsCounter{interval: time.Second, last: start}
}

// Frame records one frame at now. It returns the rounded frame rate and
// true when an interval has elapsed since the last report.
func (c *fpsCounter) Frame(now time.Time) (int, bool) {
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return 0, false
	}
	fps := int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.last = now
	return fps, true
}
