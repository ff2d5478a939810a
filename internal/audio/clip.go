package audio

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// Gain range the linear volume is mapped onto, in decibels.
const (
	MinGain = -80.0
	MaxGain = 6.0206
)

// Gain maps a linear volume in [0,1] to decibels.
func Gain(volume float64) float64 {
	volume = math.Max(0, math.Min(1, volume))
	return MinGain + (MaxGain-MinGain)*volume
}

// Clip is a decoded sound. A nil Clip, or one without data, is silent.
type Clip struct {
	name   string
	buf    *beep.Buffer
	out    Output
	volume float64

	// current is the most recently started stream; Stop ends it.
	current *beep.Ctrl
	gain    *effects.Volume
}

// LoadClip decodes a WAV file into memory. On failure it returns a silent
// clip together with the error, so callers may log and carry on.
func LoadClip(fsys fs.FS, path string, out Output) (*Clip, error) {
	c := &Clip{name: path, out: out, volume: 1}
	if fsys == nil {
		return c, fmt.Errorf("audio: load %s: no filesystem", path)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return c, fmt.Errorf("audio: load %s: %w", path, err)
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return c, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer s.Close()

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return c, fmt.Errorf("audio: read %s: %w", path, err)
	}
	c.buf = buf
	return c, nil
}

// Name returns the path the clip was loaded from.
func (c *Clip) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Loaded reports whether the clip has audio data.
func (c *Clip) Loaded() bool {
	return c != nil && c.buf != nil && c.buf.Len() > 0
}

// Play starts the clip once from the beginning.
func (c *Clip) Play() {
	if !c.playable() {
		return
	}
	c.start(c.buf.Streamer(0, c.buf.Len()))
}

// Loop plays the clip from the beginning, repeating until Stop.
func (c *Clip) Loop() {
	if !c.playable() {
		return
	}
	c.Stop()
	c.start(beep.Loop(-1, c.buf.Streamer(0, c.buf.Len())))
}

// Stop ends the most recently started stream.
func (c *Clip) Stop() {
	if !c.playable() || c.current == nil {
		return
	}
	c.out.Lock()
	c.current.Streamer = nil
	c.out.Unlock()
	c.current = nil
	c.gain = nil
}

// SetVolume sets a linear volume in [0,1]. It applies to the stream that
// is playing and to every later one.
func (c *Clip) SetVolume(v float64) {
	if c == nil {
		return
	}
	c.volume = math.Max(0, math.Min(1, v))
	if c.gain != nil && c.out != nil {
		c.out.Lock()
		applyGain(c.gain, c.volume)
		c.out.Unlock()
	}
}

// Volume returns the linear volume.
func (c *Clip) Volume() float64 {
	if c == nil {
		return 0
	}
	return c.volume
}

func (c *Clip) playable() bool {
	return c.Loaded() && c.out != nil
}

func (c *Clip) start(s beep.Streamer) {
	if rate := c.out.SampleRate(); rate != c.buf.Format().SampleRate {
		s = beep.Resample(4, c.buf.Format().SampleRate, rate, s)
	}
	gain := &effects.Volume{Streamer: s, Base: 10}
	applyGain(gain, c.volume)
	ctrl := &beep.Ctrl{Streamer: gain}
	c.current = ctrl
	c.gain = gain
	c.out.Add(ctrl)
}

// applyGain sets v's amplitude to the decibel gain of volume.
func applyGain(v *effects.Volume, volume float64) {
	if volume <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = Gain(volume) / 20
}
