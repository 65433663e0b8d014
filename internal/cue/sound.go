package cue

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 250 * time.Millisecond
	bufferSize   = 10
)

// Speaker plays sine tones on the default audio device. The device is
// opened on first use.
type Speaker struct {
	initErr error
	once    sync.Once
}

func (s *Speaker) init() error {
	s.once.Do(func() {
		s.initErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Second/bufferSize),
		)
	})

	return s.initErr
}

// Play plays a short tone at freq and returns without waiting for it to
// finish.
func (s *Speaker) Play(freq float64) error {
	if err := s.init(); err != nil {
		return err
	}

	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return err
	}

	speaker.Play(beep.Take(sampleRate.N(toneDuration), tone))

	return nil
}
