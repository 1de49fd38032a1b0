package app

import "time"

// spinWindow is how long before the deadline Wait stops sleeping and spins
const spinWindow = 200 * time.Microsecond

// FrameLimiter caps the frame rate when vsync is off
type FrameLimiter struct {
	target time.Duration
	next   time.Time
	now    func() time.Time
	sleep  func(time.Duration)
}

// NewFrameLimiter returns a limiter for fps frames per second; fps <= 0 disables it
func NewFrameLimiter(fps int) *FrameLimiter {
	f := &FrameLimiter{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		f.target = time.Second / time.Duration(fps)
	}
	return f
}

// Target returns the frame period, 0 when unlimited
func (f *FrameLimiter) Target() time.Duration { return f.target }

// Wait blocks until the next frame is due.
// Sleeps most of the remaining time and spins the last few microseconds.
func (f *FrameLimiter) Wait() {
	if f.target <= 0 {
		return
	}

	if f.next.IsZero() {
		f.next = f.now().Add(f.target)
	} else {
		f.next = f.next.Add(f.target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			f.sleep(remaining - spinWindow)
		}
		if !f.now().Before(f.next) {
			break
		}
	}

	// resync after a hitch instead of racing to catch up
	if late := f.now().Sub(f.next); late > f.target {
		f.next = f.now().Add(f.target)
	}
}
