// Package audio plays a short chime at the top of each hour.
//
// Audio is strictly optional: when the speaker cannot be initialized
// the clock runs silently.
package audio

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bigclock/constants"
)

// Chimer synthesizes the hour chime through the system speaker.
// A nil or uninitialized Chimer no-ops on every method
type Chimer struct {
	sampleRate beep.SampleRate
	ready      bool
}

// NewChimer initializes the speaker. The returned chimer is always
// usable: if the speaker cannot be initialized it stays silent and
// the clock continues without audio
func NewChimer() *Chimer {
	c := &Chimer{sampleRate: beep.SampleRate(constants.ChimeSampleRate)}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(constants.SpeakerBufferLength)); err != nil {
		log.Printf("audio unavailable, chime disabled: %v", err)
		return c
	}
	c.ready = true
	return c
}

// ChimeHour queues a low-then-high two-tone chime. Playback is
// asynchronous and never blocks the render cadence
func (c *Chimer) ChimeHour() {
	if c == nil || !c.ready {
		return
	}

	low, err := generators.SineTone(c.sampleRate, constants.ChimeToneLowHz)
	if err != nil {
		return
	}
	high, err := generators.SineTone(c.sampleRate, constants.ChimeToneHighHz)
	if err != nil {
		return
	}

	n := c.sampleRate.N(constants.ChimeToneDuration)
	speaker.Play(beep.Seq(beep.Take(n, low), beep.Take(n, high)))
}

// Close shuts the speaker down
func (c *Chimer) Close() {
	if c == nil || !c.ready {
		return
	}
	speaker.Close()
}
