package config

import "sync"

// Runtime clamps.
const (
	MinThreshold = -10.0
	MaxThreshold = 10.0
	MinBrush     = -10.0
	MaxBrush     = 10.0
	MaxFPSLimit  = 1000
)

// EditSettings holds values the user can tune while the editor runs.
type EditSettings struct {
	mu        sync.RWMutex
	threshold float32
	brush     float32
	fpsLimit  int // 0 = uncapped
}

var globalEditSettings = &EditSettings{
	threshold: 0.5,
	brush:     1.0,
	fpsLimit:  120,
}

// GetThreshold returns the isovalue samples must exceed to count as inside
func GetThreshold() float32 {
	globalEditSettings.mu.RLock()
	defer globalEditSettings.mu.RUnlock()
	return globalEditSettings.threshold
}

// SetThreshold sets the isovalue
func SetThreshold(v float32) {
	globalEditSettings.mu.Lock()
	defer globalEditSettings.mu.Unlock()
	globalEditSettings.threshold = clamp(v, MinThreshold, MaxThreshold)
}

// GetBrush returns the value painted into the field
func GetBrush() float32 {
	globalEditSettings.mu.RLock()
	defer globalEditSettings.mu.RUnlock()
	return globalEditSettings.brush
}

// SetBrush sets the painted value
func SetBrush(v float32) {
	globalEditSettings.mu.Lock()
	defer globalEditSettings.mu.Unlock()
	globalEditSettings.brush = clamp(v, MinBrush, MaxBrush)
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalEditSettings.mu.RLock()
	defer globalEditSettings.mu.RUnlock()
	return globalEditSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(fps int) {
	globalEditSettings.mu.Lock()
	defer globalEditSettings.mu.Unlock()

	if fps < 0 {
		fps = 0
	}
	if fps > MaxFPSLimit {
		fps = MaxFPSLimit
	}
	globalEditSettings.fpsLimit = fps
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
