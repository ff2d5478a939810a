// Package tui is the terminal front end: Bubble Tea owns the screen and
// the keyboard while a runner goroutine steps the game.
package tui

import tea "github.com/charmbracelet/bubbletea"

// FrameMsg tells the model the simulation advanced and a repaint is due.
type FrameMsg struct{}

// runnerDoneMsg carries the runner's exit.
type runnerDoneMsg struct{ err error }

// notifier coalesces frame signals: at most one repaint is ever pending.
type notifier chan struct{}

func newNotifier() notifier {
	return make(notifier, 1)
}

func (n notifier) notify() {
	select {
	case n <- struct{}{}:
	default:
	}
}

// wait returns a command that blocks until the next frame.
func (n notifier) wait() tea.Cmd {
	return func() tea.Msg {
		<-n
		return FrameMsg{}
	}
}
