package hangman

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/robalobadob/sachgames/internal/config"
)

func setOf(s string) mapset.Set[rune] {
	set := mapset.New[rune]()
	for _, r := range s {
		set.Put(r)
	}
	return set
}

func TestPredicates(t *testing.T) {
	require.True(t, IsWon("CAT", setOf("CAT")))
	require.True(t, IsWon("CAT", setOf("TACXQ")))
	require.False(t, IsWon("CAT", setOf("CA")))
	require.False(t, IsWon("", setOf("CAT")))
	require.True(t, IsWon("BOOK", setOf("BOK")))

	require.False(t, IsLost(7, 8))
	require.True(t, IsLost(8, 8))
	require.True(t, IsLost(6, 6))
	require.False(t, IsLost(100, 0))
}

func TestGameWin(t *testing.T) {
	g := New("cat", config.MaxWrongGuesses)
	require.Equal(t, "CAT", g.Word)
	require.Equal(t, "_ _ _", g.Masked())

	hit, st, err := g.Guess('c')
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, StatePlaying, st)
	require.Equal(t, "C _ _", g.Masked())

	_, _, err = g.Guess('A')
	require.NoError(t, err)
	_, st, err = g.Guess('T')
	require.NoError(t, err)
	require.Equal(t, StateWon, st)
	require.Equal(t, 0, g.Incorrect)

	_, _, err = g.Guess('Z')
	require.ErrorIs(t, err, ErrFinished)
}

func TestGameLossAtThreshold(t *testing.T) {
	g := New("CAT", config.MaxWrongGuesses)
	_, _, err := g.Guess('C')
	require.NoError(t, err)

	var st State
	for i, r := range "XQZWVBDE" {
		var hit bool
		hit, st, err = g.Guess(r)
		require.NoError(t, err)
		require.False(t, hit)
		if i < 7 {
			require.Equal(t, StatePlaying, st)
		}
	}
	require.Equal(t, StateLost, st)
	require.Equal(t, 8, g.Incorrect)
	require.Equal(t, 0, g.Remaining())
	require.Equal(t, 8, g.Stage())
	require.Contains(t, g.Drawing(), "/ \\")
}

func TestRepeatGuessIsNoop(t *testing.T) {
	g := New("CAT", config.MaxWrongGuesses)
	_, _, _ = g.Guess('X')
	hit, st, err := g.Guess('x')
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, StatePlaying, st)
	require.Equal(t, 1, g.Incorrect)
	require.Equal(t, []rune{'X'}, g.History)
}

func TestInvalidGuesses(t *testing.T) {
	g := New("CAT", config.MaxWrongGuesses)
	for _, s := range []string{"", "AB", "1", "é", " "} {
		_, _, err := g.GuessString(s)
		require.ErrorIs(t, err, ErrInvalidLetter, "%q", s)
	}
	require.Equal(t, 0, g.Guessed.Size())

	hit, _, err := g.GuessString(" a ")
	require.NoError(t, err)
	require.True(t, hit)
}

func TestLetterStatusAndGuessed(t *testing.T) {
	g := New("CAT", config.MaxWrongGuesses)
	for _, r := range "TZC" {
		_, _, err := g.Guess(r)
		require.NoError(t, err)
	}
	require.Equal(t, LetterCorrect, g.LetterStatus('t'))
	require.Equal(t, LetterIncorrect, g.LetterStatus('Z'))
	require.Equal(t, LetterUnused, g.LetterStatus('A'))
	require.Equal(t, []string{"C", "T", "Z"}, g.GuessedLetters())
}

func TestStageScalesWithThreshold(t *testing.T) {
	g := New("CAT", 4)
	require.Equal(t, 0, g.Stage())
	_, _, _ = g.Guess('X')
	require.Equal(t, 2, g.Stage())
	for _, r := range "QZW" {
		_, _, _ = g.Guess(r)
	}
	require.Equal(t, StateLost, g.State())
	require.Equal(t, 8, g.Stage())
}
