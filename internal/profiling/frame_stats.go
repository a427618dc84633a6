package profiling

import "time"

// FrameStats keeps a rolling window of frame durations.
type FrameStats struct {
	history []time.Duration
	size    int
	last    time.Duration
}

// NewFrameStats keeps the last size frames; size < 1 keeps one.
func NewFrameStats(size int) *FrameStats {
	return &FrameStats{size: max(size, 1)}
}

// Record adds one frame duration, dropping the oldest when full.
func (s *FrameStats) Record(d time.Duration) {
	if len(s.history) >= s.size {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)
	s.last = d
}

// Last returns the most recent duration.
func (s *FrameStats) Last() time.Duration { return s.last }

// Summary returns min, average and max over the window, all zero when empty.
func (s *FrameStats) Summary() (lo, avg, hi time.Duration) {
	if len(s.history) == 0 {
		return 0, 0, 0
	}
	lo, hi = s.history[0], s.history[0]
	var total time.Duration
	for _, v := range s.history {
		total += v
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, total / time.Duration(len(s.history)), hi
}
