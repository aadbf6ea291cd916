// Package alarm plays the emergency tone on the default audio device.
package alarm

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 880 // Hz
	toneLength = 150 * time.Millisecond
	gapLength  = 100 * time.Millisecond
	repeats    = 3
)

// Speaker sounds the alarm through the audio device
type Speaker struct {
	rate beep.SampleRate
}

// New initialises the speaker. Callers treat a failure as non-fatal and
// fall back to a silent or terminal alarm.
func New() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: sampleRate}, nil
}

// Sound plays the tone without blocking
func (s *Speaker) Sound() {
	tone, err := Tone(s.rate)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Tone builds the alarm: repeated sine beeps separated by silence
func Tone(rate beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, 2*repeats-1)
	for i := 0; i < repeats; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(gapLength)))
		}
		sine, err := generators.SineTone(rate, frequency)
		if err != nil {
			return nil, fmt.Errorf("sine tone: %w", err)
		}
		parts = append(parts, beep.Take(rate.N(toneLength), sine))
	}
	return beep.Seq(parts...), nil
}
