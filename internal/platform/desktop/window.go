// Package desktop is the windowed front end. Ebitengine owns the window
// and the keyboard; the simulation runs on its own goroutine at the
// configured tick rate and Draw paints whatever snapshot is current.
package desktop

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"github.com/vovakirdan/tui-brawler/internal/assets"
	"github.com/vovakirdan/tui-brawler/internal/audio"
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/runner"
	"github.com/vovakirdan/tui-brawler/internal/session"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// Options are the collaborators of a window session.
type Options struct {
	Bank     *audio.Bank
	Store    *storage.Store
	Table    *assets.Table
	Logger   *log.Logger
	TickRate int
}

// Window implements ebiten.Game.
type Window struct {
	cfg    config.BrawlerConfig
	sess   *session.Session
	latch  *core.InputLatch
	run    *runner.Runner
	table  *assets.Table
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
	done   chan error

	sprites map[brawler.SpriteKey]*ebiten.Image
	bg      *ebiten.Image
	face    font.Face
}

// New wires a game into a window. The game must already be Reset.
func New(ctx context.Context, game *brawler.Game, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	latch := core.NewInputLatch(0)
	sess := session.New(game, latch,
		session.WithAudio(opts.Bank),
		session.WithStore(opts.Store),
		session.WithLogger(logger),
	)

	ctx, cancel := context.WithCancel(ctx)
	w := &Window{
		cfg:     game.Config(),
		sess:    sess,
		latch:   latch,
		table:   opts.Table,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan error, 1),
		sprites: make(map[brawler.SpriteKey]*ebiten.Image),
		run: runner.New(sess.Step,
			runner.WithTickRate(opts.TickRate),
			runner.WithLogger(logger),
		),
	}

	face, err := loadFace(hudFontSize)
	if err != nil {
		logger.Warn("hud font unavailable, using debug text", "err", err)
	} else {
		w.face = face
	}
	return w
}

// Update polls the keyboard. The first call starts the simulation.
func (w *Window) Update() error {
	w.once.Do(func() {
		go func() { w.done <- w.run.Run(w.ctx) }()
	})

	select {
	case err := <-w.done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return ebiten.Termination
	default:
	}

	if poll(keyState{down: ebiten.IsKeyPressed, just: inpututil.IsKeyJustPressed}, w.latch) {
		w.cancel()
		return ebiten.Termination
	}
	return nil
}

// Layout keeps the logical screen at the world size; Ebitengine scales it
// to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Screen.Width, w.cfg.Screen.Height
}

// Close stops the simulation goroutine.
func (w *Window) Close() {
	w.cancel()
}

// Run opens the window and plays until it is closed.
func Run(ctx context.Context, game *brawler.Game, opts Options) error {
	w := New(ctx, game, opts)
	defer w.Close()

	ebiten.SetWindowSize(w.cfg.Screen.Width, w.cfg.Screen.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return nil
}
