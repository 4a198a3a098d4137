// Package audio plays short interface tones.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clearDuration = 80 * time.Millisecond
	clearFreq     = 440
)

// Cue plays a tone when the grid is cleared. A disabled or failed cue is
// silent.
type Cue struct {
	ready bool
}

// NewCue initialises the speaker when enabled. The returned cue is always
// usable; the error only reports why it is silent.
func NewCue(enabled bool) (*Cue, error) {
	c := &Cue{}
	if !enabled {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.ready = true
	return c, nil
}

// Enabled reports whether the speaker is available.
func (c *Cue) Enabled() bool { return c != nil && c.ready }

// Cleared plays the clear tone.
func (c *Cue) Cleared() {
	if !c.Enabled() {
		return
	}
	tone, err := Tone(sampleRate, clearDuration, clearFreq)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (c *Cue) Close() {
	if !c.Enabled() {
		return
	}
	speaker.Close()
	c.ready = false
}

// Tone returns a sine wave of freq Hz lasting d.
func Tone(sr beep.SampleRate, d time.Duration, freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(d), sine), nil
}
