package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/sachgames/internal/game"
)

func TestCheckWordleIgnoresCase(t *testing.T) {
	tests := []struct {
		target, guess string
		win           bool
	}{
		{"crane", "CRANE", true},
		{"Crane", " crane ", true},
		{"CRANE", "slate", false},
	}
	for _, tt := range tests {
		res, err := checkWordle(tt.target, tt.guess)
		require.NoError(t, err)
		require.Equal(t, tt.win, res.IsWin(), "%s/%s", tt.target, tt.guess)
	}

	res, err := checkWordle("crane", "SLATE")
	require.NoError(t, err)
	require.Equal(t, game.VerdictCorrect, res[2].Verdict, "A matches a")

	_, err = checkWordle("crane", "cranes")
	require.ErrorIs(t, err, game.ErrInvalidInput)
}

func TestWordleCheckCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := wordleCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "crane", "CRANE"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "solved")
}
