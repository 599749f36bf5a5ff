package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 660
	clickLen   = 30 * time.Millisecond
)

// clicker plays a short tone when springs tear.
type clicker struct {
	enabled bool
}

// newClicker opens the speaker. On failure the clicker stays silent and the
// error is returned for logging.
func newClicker() (*clicker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &clicker{}, err
	}

	return &clicker{enabled: true}, nil
}

// click plays one tone, pitched up with the number of springs torn this tick.
func (c *clicker) click(torn int) {
	if !c.enabled || torn <= 0 {
		return
	}
	tone, err := generators.SineTone(sampleRate, clickFreq+20*float64(min(torn, 20)))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLen), tone))
}

func (c *clicker) close() {
	if c.enabled {
		speaker.Close()
	}
}
