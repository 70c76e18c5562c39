package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/sachgames/internal/crossword"
	"github.com/robalobadob/sachgames/internal/game"
	"github.com/robalobadob/sachgames/internal/stats"
)

func init() {
	// Plain output keeps assertions free of escape codes.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestGuessRowShowsLetters(t *testing.T) {
	res, err := game.Evaluate("CRANE", "REACT")
	require.NoError(t, err)
	out := GuessRow(res)
	for _, l := range []string{"R", "E", "A", "C", "T"} {
		require.Contains(t, out, l)
	}
	require.Less(t, strings.Index(out, "R"), strings.Index(out, "T"))
}

func TestGridRendering(t *testing.T) {
	g, err := crossword.Build([]crossword.Placement{
		{ID: 1, Text: "Pet", Answer: "CAT", Row: 0, Col: 0, Direction: crossword.Across},
		{ID: 2, Text: "Vehicle", Answer: "CAR", Row: 0, Col: 0, Direction: crossword.Down},
	}, 3)
	require.NoError(t, err)

	hidden := Grid(g, false)
	require.NotContains(t, hidden, "T")
	require.Contains(t, hidden, "1")
	require.Contains(t, hidden, "■")

	shown := Grid(g, true)
	for _, l := range []string{"C", "A", "T", "R"} {
		require.Contains(t, shown, l)
	}

	clues := Clues(g)
	require.Contains(t, clues, "Across")
	require.Contains(t, clues, "1. Pet (3)")
	require.Contains(t, clues, "1. Vehicle (3)")
}

func TestStatsTable(t *testing.T) {
	out := Stats(stats.WinStats{WordleWins: 2, HangmanWins: 1, TotalWins: 3})
	require.Contains(t, out, "Wordle")
	require.Contains(t, out, "Total")
	require.Contains(t, out, "3")
}
