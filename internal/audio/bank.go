package audio

import (
	"io/fs"
	"path"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Cue names, also the WAV file names under the sound directory.
const (
	CueSwing    = "swing"
	CueHit      = "hit"
	CueStomp    = "stomp"
	CueGameOver = "gameover"
	CueMusic    = "music"
)

var cues = []string{CueSwing, CueHit, CueStomp, CueGameOver, CueMusic}

// Bank maps simulation events to clips. It must be driven from a single
// goroutine, normally the one stepping the simulation.
type Bank struct {
	clips  map[string]*Clip
	logger *log.Logger
}

// NewBank loads every cue from fsys. A nil output, a disabled config or a
// missing file all leave the affected clips silent.
func NewBank(fsys fs.FS, cfg config.AudioConfig, out Output, logger *log.Logger) *Bank {
	b := &Bank{
		clips:  make(map[string]*Clip, len(cues)),
		logger: logger,
	}

	if !cfg.Enabled {
		out = nil
		logger.Info("audio disabled")
	}

	for _, name := range cues {
		p := path.Join(cfg.Dir, name+".wav")
		clip, err := LoadClip(fsys, p, out)
		if err != nil && out != nil {
			logger.Warn("sound unavailable, playing silence", "cue", name, "err", err)
		}
		clip.SetVolume(cfg.Volume)
		b.clips[name] = clip
	}
	b.clips[CueSwing].SetVolume(cfg.SwingVolume)
	return b
}

// Clip returns the clip for a cue, or nil.
func (b *Bank) Clip(name string) *Clip {
	if b == nil {
		return nil
	}
	return b.clips[name]
}

// Handle plays the cues for a tick's events.
func (b *Bank) Handle(events core.Events) {
	if b == nil {
		return
	}
	for _, ev := range events {
		switch ev.Kind {
		case core.EventSwing:
			b.clips[CueSwing].Play()
		case core.EventHit, core.EventPlayerHurt:
			b.clips[CueHit].Play()
		case core.EventStomp:
			b.clips[CueStomp].Play()
		case core.EventGameOver:
			b.clips[CueGameOver].Play()
		case core.EventMusicStart:
			b.clips[CueMusic].Loop()
		case core.EventMusicStop:
			b.clips[CueMusic].Stop()
		}
	}
}

// Close stops every clip.
func (b *Bank) Close() {
	if b == nil {
		return
	}
	for _, c := range b.clips {
		c.Stop()
	}
}
