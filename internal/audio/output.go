// Package audio plays the game's sound cues and background music.
//
// Clips are decoded once into memory and streamed through a shared mixer.
// Every failure degrades to silence: a clip that could not be loaded, or a
// bank without an audio device, accepts all calls and plays nothing.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the device rate every clip is resampled to.
const SampleRate = beep.SampleRate(44100)

// Output is where clips send their streams. Lock must be held while
// mutating a stream that is already playing.
type Output interface {
	SampleRate() beep.SampleRate
	Add(s beep.Streamer)
	Lock()
	Unlock()
}

// speakerOutput mixes into the system speaker.
type speakerOutput struct {
	mixer *beep.Mixer
}

var (
	speakerOnce sync.Once
	speakerOut  *speakerOutput
	speakerErr  error
)

// OpenSpeaker initialises the audio device once per process.
func OpenSpeaker() (Output, error) {
	speakerOnce.Do(func() {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			speakerErr = fmt.Errorf("audio: init speaker: %w", err)
			return
		}
		out := &speakerOutput{mixer: &beep.Mixer{}}
		speaker.Play(out.mixer)
		speakerOut = out
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	return speakerOut, nil
}

func (o *speakerOutput) SampleRate() beep.SampleRate { return SampleRate }

func (o *speakerOutput) Add(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *speakerOutput) Lock()   { speaker.Lock() }
func (o *speakerOutput) Unlock() { speaker.Unlock() }
