package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// maxRounds is the number of rounds shown in the history table.
const maxRounds = 50

// historyView is the table of rounds played this session.
type historyView struct {
	table   table.Model
	rounds  []storage.Round
	best    int
	byScore bool // Best rounds first instead of newest
	width   int
	height  int
}

func newHistoryView(width, height int) historyView {
	h := historyView{width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a table sized for the current window.
func (h *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Speed", Width: 6},
		{Title: "Mazes", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, h.height-8)), // Leave room for title, summary and help
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

	return t
}

// load refreshes the rounds for gameID from the store.
func (h *historyView) load(store *storage.Store, gameID string) error {
	if store == nil {
		h.rounds = nil
		h.updateRows()
		return nil
	}

	var rounds []storage.Round
	var err error
	if h.byScore {
		rounds, err = store.TopRounds(gameID, maxRounds)
	} else {
		rounds, err = store.RecentRounds(gameID, maxRounds)
	}
	if err != nil {
		return err
	}
	best, err := store.BestScore(gameID)
	if err != nil {
		return err
	}
	h.rounds = rounds
	h.best = best
	h.updateRows()
	return nil
}

// resize rebuilds the table for a new window size.
func (h *historyView) resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateRows()
}

// updateRows fills the table. The first column is the rank when sorted
// by score and the round number otherwise.
func (h *historyView) updateRows() {
	rows := make([]table.Row, len(h.rounds))
	for i, r := range h.rounds {
		n := len(h.rounds) - i
		if h.byScore {
			n = i + 1
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.SpeedLevel),
			fmt.Sprintf("%d", r.MazesCleared),
			fmt.Sprintf("%d", r.Ticks),
			r.EndedAt.Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// View renders the title, session best and the table.
func (h historyView) View(title string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render(title), h.width))
	b.WriteString("\n\n")

	order := "newest first"
	if h.byScore {
		order = "best first"
	}
	summary := fmt.Sprintf("Session best: %d  |  Rounds: %d  |  %s", h.best, len(h.rounds), order)
	b.WriteString(centerText(summary, h.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(h.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(centerText(tableStyle.Render(emptyStyle.Render("No rounds finished yet.")), h.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(h.table.View()), h.width))
	}

	return b.String()
}

// centerText pads each line of text so the block is centered in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := strings.Repeat(" ", (width-w)/2)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = padding + l
	}
	return strings.Join(lines, "\n")
}
