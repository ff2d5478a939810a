package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brawler/internal/session"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// maxScores is how many runs the overlay lists.
const maxScores = 20

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardFootStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
)

// scoreboard is the overlay listing this session's finished runs, either
// best first or newest first.
type scoreboard struct {
	table   table.Model
	entries []storage.ScoreEntry
	record  session.Record
	recent  bool
	rate    int
}

func newScoreboard(tickRate int) scoreboard {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Kills", Width: 6},
			{Title: "Time", Width: 8},
			{Title: "Finished", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	if tickRate <= 0 {
		tickRate = 60
	}
	return scoreboard{table: t, rate: tickRate}
}

// load replaces the listed runs and the stored totals.
func (b *scoreboard) load(entries []storage.ScoreEntry, rec session.Record) {
	b.entries = entries
	b.record = rec
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		secs := int(e.Ticks) / b.rate
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Kills),
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			e.CreatedAt.Format("15:04:05"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

func (b scoreboard) update(msg tea.Msg) (scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b scoreboard) view() string {
	body := b.table.View()
	if len(b.entries) == 0 {
		body = boardEmptyStyle.Render("No runs finished yet.")
	}
	title := "SESSION SCORES - BEST"
	if b.recent {
		title = "SESSION SCORES - RECENT"
	}
	foot := fmt.Sprintf("%d runs stored, best %d", b.record.Runs, b.record.Best)
	return lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render(title),
		boardFrameStyle.Render(body),
		boardFootStyle.Render(foot),
	)
}
