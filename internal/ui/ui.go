// internal/ui/ui.go
//
// Terminal rendering for the CLI.
// Responsibilities:
//   - Colour a scored Wordle row by verdict.
//   - Draw a crossword grid (numbers, blocked cells, optional solution).
//   - Print win counters as a small table.
//
// Renderers return strings; callers decide where to print them.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/sachgames/internal/crossword"
	"github.com/robalobadob/sachgames/internal/game"
	"github.com/robalobadob/sachgames/internal/stats"
)

var (
	tile = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))

	verdictStyles = map[game.Verdict]lipgloss.Style{
		game.VerdictCorrect: tile.Background(lipgloss.Color("#538D4E")),
		game.VerdictPresent: tile.Background(lipgloss.Color("#B59F3B")),
		game.VerdictAbsent:  tile.Background(lipgloss.Color("#3A3A3C")),
		game.VerdictEmpty:   tile.Foreground(lipgloss.Color("#818384")),
	}

	blocked = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3C"))
	number  = lipgloss.NewStyle().Foreground(lipgloss.Color("#818384"))
	letter  = lipgloss.NewStyle().Bold(true)

	title = lipgloss.NewStyle().Bold(true).Underline(true)
	label = lipgloss.NewStyle().Width(12)
	count = lipgloss.NewStyle().Bold(true).Align(lipgloss.Right).Width(4)
	box   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// GuessRow renders one scored guess as coloured tiles.
func GuessRow(res game.GuessResult) string {
	tiles := make([]string, 0, len(res))
	for _, l := range res {
		st, ok := verdictStyles[l.Verdict]
		if !ok {
			st = verdictStyles[game.VerdictEmpty]
		}
		tiles = append(tiles, st.Render(l.Letter))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Grid renders g. With reveal the answers are filled in, otherwise open
// cells show their clue number or a dot.
func Grid(g *crossword.Grid, reveal bool) string {
	var b strings.Builder
	for r, row := range g.Cells {
		for _, cell := range row {
			switch {
			case cell.Blocked:
				b.WriteString(blocked.Render(" ■ "))
			case reveal:
				b.WriteString(letter.Render(" " + cell.Letter + " "))
			case cell.Number > 0:
				b.WriteString(number.Render(fmt.Sprintf("%-3d", cell.Number)))
			default:
				b.WriteString(" · ")
			}
		}
		if r < len(g.Cells)-1 {
			b.WriteByte('\n')
		}
	}
	return box.Render(b.String())
}

// Clues lists the across and down clues with their numbers.
func Clues(g *crossword.Grid) string {
	list := func(name string, ps []crossword.Placement) string {
		lines := []string{title.Render(name)}
		for _, p := range ps {
			n := 0
			if cell, ok := g.Cell(p.Coord(0)); ok {
				n = cell.Number
			}
			lines = append(lines, fmt.Sprintf("%3d. %s (%d)", n, p.Text, p.Length))
		}
		return strings.Join(lines, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, list("Across", g.Across), "", list("Down", g.Down))
}

// Stats renders the win counters.
func Stats(ws stats.WinStats) string {
	rows := []struct {
		name string
		n    int
	}{
		{"Wordle", ws.WordleWins},
		{"Hangman", ws.HangmanWins},
		{"Crossword", ws.CrosswordWins},
		{"Total", ws.TotalWins},
	}
	lines := []string{title.Render("Wins")}
	for _, r := range rows {
		lines = append(lines, label.Render(r.name)+count.Render(fmt.Sprint(r.n)))
	}
	return box.Render(strings.Join(lines, "\n"))
}
