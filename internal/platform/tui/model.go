package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/audio"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/runner"
	"github.com/vovakirdan/tui-brawler/internal/session"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options are the collaborators of a terminal session. Zero values are
// valid: no sound, no scoreboard, glyph sprites, discarded logs.
type Options struct {
	Bank     *audio.Bank
	Store    *storage.Store
	Sprites  brawler.SpriteSource
	Logger   *log.Logger
	TickRate int
	Hold     time.Duration
	Width    int
	Height   int
}

// Model is the Bubble Tea model for a brawler session.
type Model struct {
	sess    *session.Session
	latch   *core.InputLatch
	run     *runner.Runner
	frames  notifier
	ctx     context.Context
	cancel  context.CancelFunc
	sprites brawler.SpriteSource
	logger  *log.Logger

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	board  scoreboard

	showBoard bool
	quitting  bool
	width     int
	height    int
}

// NewModel wires a game into a model. The game must already be Reset.
func NewModel(ctx context.Context, game *brawler.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = runner.DefaultTickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	frames := newNotifier()
	latch := core.NewInputLatch(opts.Hold)
	sess := session.New(game, latch,
		session.WithAudio(opts.Bank),
		session.WithStore(opts.Store),
		session.WithLogger(logger),
		session.OnFrame(frames.notify),
	)
	run := runner.New(sess.Step,
		runner.WithTickRate(opts.TickRate),
		runner.WithLogger(logger),
	)

	ctx, cancel := context.WithCancel(ctx)
	m := Model{
		sess:    sess,
		latch:   latch,
		run:     run,
		frames:  frames,
		ctx:     ctx,
		cancel:  cancel,
		sprites: opts.Sprites,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		board:   newScoreboard(opts.TickRate),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the simulation goroutine and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runLoop(), m.frames.wait())
}

func (m Model) runLoop() tea.Cmd {
	return func() tea.Msg {
		return runnerDoneMsg{err: m.run.Run(m.ctx)}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m, m.frames.wait()

	case runnerDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("simulation stopped", "err", msg.err)
		}
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.loadScores()
		}
		return m, nil
	}

	if m.showBoard {
		switch {
		case key.Matches(msg, m.keys.Recent):
			m.board.recent = !m.board.recent
			m.loadScores()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if err := m.sess.ClearScores(); err != nil {
				m.logger.Warn("cannot clear scores", "err", err)
			}
			m.loadScores()
			return m, nil
		}
		var cmd tea.Cmd
		m.board, cmd = m.board.update(msg)
		return m, cmd
	}

	m.keys.Apply(msg, m.latch)
	return m, nil
}

func (m *Model) loadScores() {
	list := m.sess.TopScores
	if m.board.recent {
		list = m.sess.RecentScores
	}
	entries, err := list(maxScores)
	if err != nil {
		m.logger.Warn("cannot load scores", "err", err)
	}
	rec, err := m.sess.Record()
	if err != nil {
		m.logger.Warn("cannot read score totals", "err", err)
	}
	m.board.load(entries, rec)
}

// resize fits the arena into the window, leaving room for the help line.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w

	rows := h - lipgloss.Height(m.help.View(m.keys))
	if rows < 1 {
		rows = 1
	}
	if m.screen == nil {
		m.screen = core.NewScreen(w, rows)
		return
	}
	m.screen.Resize(w, rows)
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showBoard {
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.board.view())
	} else {
		brawler.Draw(m.screen, m.sess.Snapshot(), m.sprites)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Stop cancels the simulation goroutine.
func (m Model) Stop() {
	m.cancel()
}

// Run plays a session in the terminal until the user quits.
func Run(ctx context.Context, game *brawler.Game, opts Options) error {
	m := NewModel(ctx, game, opts)
	defer m.Stop()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
