package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickTone     = 880
	clickLength   = 25 * time.Millisecond
	clickInterval = 40 * time.Millisecond
)

// clicker plays a short tone for painted cells. A nil clicker is silent.
type clicker struct {
	mu          sync.Mutex
	initialized bool
	last        time.Time
}

func newClicker() *clicker {
	return &clicker{}
}

func (c *clicker) init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// play is rate limited so a fast drag does not queue a buzz
func (c *clicker) play() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || time.Since(c.last) < clickInterval {
		return
	}
	c.last = time.Now()

	sine, err := generators.SineTone(sampleRate, clickTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLength), sine))
}

func (c *clicker) close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		speaker.Close()
		c.initialized = false
	}
}
