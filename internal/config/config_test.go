package config

import (
	"errors"
	"flag"
	"testing"
)

func TestSettingsClamp(t *testing.T) {
	t.Cleanup(func() { NewLaunch().Apply() })

	SetThreshold(99)
	if got := GetThreshold(); got != MaxThreshold {
		t.Errorf("threshold = %v, want %v", got, MaxThreshold)
	}
	SetBrush(-99)
	if got := GetBrush(); got != MinBrush {
		t.Errorf("brush = %v, want %v", got, MinBrush)
	}
	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("fps = %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != MaxFPSLimit {
		t.Errorf("fps = %d, want %d", got, MaxFPSLimit)
	}
}

func TestLaunchBindAndApply(t *testing.T) {
	t.Cleanup(func() { NewLaunch().Apply() })

	c := NewLaunch()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-threshold", "0.25", "-brush", "2", "-fps", "30", "-seed=false"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Seed {
		t.Error("seed flag not applied")
	}
	c.Apply()
	if GetThreshold() != 0.25 || GetBrush() != 2 || GetFPSLimit() != 30 {
		t.Fatalf("apply: threshold=%v brush=%v fps=%d", GetThreshold(), GetBrush(), GetFPSLimit())
	}
}

func TestLaunchValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Launch)
		want   error
	}{
		{"size", func(c *Launch) { c.Width = 0 }, ErrInvalidSize},
		{"threshold", func(c *Launch) { c.Threshold = 11 }, ErrInvalidThreshold},
		{"brush", func(c *Launch) { c.Brush = -11 }, ErrInvalidBrush},
		{"scale", func(c *Launch) { c.CellScale = 0 }, ErrInvalidScale},
		{"fps", func(c *Launch) { c.FPS = -1 }, ErrInvalidFPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLaunch()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
	if err := NewLaunch().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
