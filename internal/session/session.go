// Package session wires one brawler game to its collaborators: an input
// source, the audio bank and the scoreboard. Front ends hand Step to a
// runner and read Snapshot from their own goroutine.
package session

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/audio"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// Source produces the input for one tick.
type Source interface {
	Frame() core.InputFrame
}

// Summary totals a session.
type Summary struct {
	Ticks uint64
	Runs  int
	Best  int
	Kills int
}

// Session owns the game and serialises access to it.
type Session struct {
	mu    sync.Mutex
	game  *brawler.Game
	input Source
	bank  *audio.Bank
	store *storage.Store

	logger  *log.Logger
	onFrame func()

	runKills int
	runStart uint64
	summary  Summary
}

// Option configures a Session.
type Option func(*Session)

// WithAudio routes simulation cues to the bank.
func WithAudio(b *audio.Bank) Option {
	return func(s *Session) { s.bank = b }
}

// WithStore records every finished run in the scoreboard.
func WithStore(st *storage.Store) Option {
	return func(s *Session) { s.store = st }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// OnFrame registers a callback invoked after every step, outside the lock.
func OnFrame(fn func()) Option {
	return func(s *Session) { s.onFrame = fn }
}

// New creates a session. The game must already be Reset.
func New(game *brawler.Game, input Source, opts ...Option) *Session {
	s := &Session{
		game:   game,
		input:  input,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step advances the game one tick. It has the signature runner.New expects.
func (s *Session) Step() error {
	in := s.input.Frame()

	res, tick := s.advance(in)
	s.bank.Handle(res.Events)
	err := s.observe(res, tick)

	if s.onFrame != nil {
		s.onFrame()
	}
	return err
}

// advance steps the game under the lock. The lock is released even when
// the step panics, so the runner can carry on and readers never block.
func (s *Session) advance(in core.InputFrame) (core.StepResult, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.game.Step(in)
	return res, s.game.Tick()
}

func (s *Session) observe(res core.StepResult, tick uint64) error {
	s.summary.Ticks++

	var err error
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventPhaseChanged:
			phase := brawler.Phase(ev.X)
			s.logger.Debug("phase changed", "phase", phase, "tick", tick)
			if phase == brawler.PhasePlaying {
				s.runKills = 0
				s.runStart = tick
			}
		case core.EventEnemyKilled:
			s.runKills++
			s.summary.Kills++
			s.logger.Debug("enemy killed", "x", ev.X, "y", ev.Y, "score", res.State.Score)
		case core.EventGameOver:
			err = s.finish(res.State.Score, tick)
		}
	}
	return err
}

func (s *Session) finish(score int, tick uint64) error {
	s.summary.Runs++
	if score > s.summary.Best {
		s.summary.Best = score
	}

	entry := storage.ScoreEntry{
		GameID: s.game.ID(),
		Score:  score,
		Kills:  s.runKills,
		Ticks:  tick - s.runStart,
	}
	s.logger.Info("game over", "score", entry.Score, "kills", entry.Kills, "ticks", entry.Ticks)

	if s.store == nil {
		return nil
	}
	if _, err := s.store.SaveScore(entry); err != nil {
		return fmt.Errorf("session: record run: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current game state.
func (s *Session) Snapshot() brawler.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// Summary returns the totals so far. Call it from the stepping goroutine
// or after the runner has stopped.
func (s *Session) Summary() Summary {
	return s.summary
}

// TopScores returns the best recorded runs of this session.
func (s *Session) TopScores(limit int) ([]storage.ScoreEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.TopScores(s.game.ID(), limit)
}

// RecentScores returns the latest recorded runs, newest first.
func (s *Session) RecentScores(limit int) ([]storage.ScoreEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.Recent(s.game.ID(), limit)
}

// Record sums up what the store holds for this game.
type Record struct {
	Runs int
	Best int
}

// Record reads the stored run count and best score. Without a store it
// is zero.
func (s *Session) Record() (Record, error) {
	if s.store == nil {
		return Record{}, nil
	}
	runs, err := s.store.Count(s.game.ID())
	if err != nil {
		return Record{}, err
	}
	best, err := s.store.HighScore(s.game.ID())
	if err != nil {
		return Record{}, err
	}
	return Record{Runs: runs, Best: best}, nil
}

// ClearScores forgets every recorded run. In-memory totals are kept.
func (s *Session) ClearScores() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.ClearScores(s.game.ID()); err != nil {
		return err
	}
	s.logger.Info("scores cleared")
	return nil
}
