package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const bellSampleRate = beep.SampleRate(44100)

// bell plays a short tone. A nil bell is silent.
type bell struct{}

func newBell() (*bell, error) {
	if err := speaker.Init(bellSampleRate, bellSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &bell{}, nil
}

func (b *bell) ring() {
	if b == nil {
		return
	}
	sine, err := generators.SineTone(bellSampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(bellSampleRate.N(80*time.Millisecond), sine))
}
