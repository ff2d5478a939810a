package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// KeyMap holds the terminal key bindings. Movement, jump and attack are
// held actions; the rest fire once per key press.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Down    key.Binding
	Attack  key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Debug   key.Binding
	Scores  key.Binding
	Recent  key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
		),
		Attack: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "attack"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f1", "`"),
			key.WithHelp("f1", "hitboxes"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Recent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "best/recent"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Attack, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Attack},
		{k.Confirm, k.Pause, k.Debug},
		{k.Scores, k.Recent, k.Clear},
		{k.Help, k.Quit},
	}
}

// Apply feeds a game key into the latch. It reports false for keys that
// are not game controls.
func (k KeyMap) Apply(msg tea.KeyMsg, latch *core.InputLatch) bool {
	switch {
	case key.Matches(msg, k.Left):
		latch.Hold(core.ActionLeft)
	case key.Matches(msg, k.Right):
		latch.Hold(core.ActionRight)
	case key.Matches(msg, k.Jump):
		latch.Hold(core.ActionUp)
	case key.Matches(msg, k.Down):
		latch.Hold(core.ActionDown)
	case key.Matches(msg, k.Attack):
		latch.Hold(core.ActionAttack)
	case key.Matches(msg, k.Confirm):
		latch.Press(core.ActionConfirm)
	case key.Matches(msg, k.Pause):
		latch.Press(core.ActionPause)
	case key.Matches(msg, k.Debug):
		latch.Press(core.ActionDebug)
	default:
		return false
	}
	return true
}
