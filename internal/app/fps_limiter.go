package app

import (
	"time"

	"isoedit/internal/config"
)

// FPSLimiter paces a frontend loop. Every frame re-marches the whole field,
// so the cap is what bounds meshing cost.
type FPSLimiter struct {
	next  time.Time
	limit func() int
}

// NewFPSLimiter creates a limiter that follows config.GetFPSLimit.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit}
}

// Wait blocks until the next frame is due. It sleeps for most of the gap and
// spins for the last 200µs.
func (f *FPSLimiter) Wait() {
	effectiveLimit := f.limit()
	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// after a hitch, resync instead of bursting to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
