package words

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedLists(t *testing.T) {
	require.NoError(t, Init())

	a, h := Stats()
	require.Equal(t, 48, a)
	require.Equal(t, 30, h)

	for _, w := range answers {
		require.Len(t, w, 5)
		require.True(t, isAlpha(w), w)
	}
	for _, w := range hangman {
		require.True(t, isAlpha(w), w)
	}
	require.False(t, IsAnswer("crane"))
	require.True(t, IsAnswer("water"))
}

func TestRandomPicksComeFromLists(t *testing.T) {
	require.NoError(t, Init())
	answersSeen := toSet(answers)
	hangmanSeen := toSet(hangman)
	for i := 0; i < 50; i++ {
		require.Contains(t, answersSeen, RandomAnswer())
		require.Contains(t, hangmanSeen, RandomHangmanWord())
	}
}

func TestPickEmpty(t *testing.T) {
	require.Equal(t, "DEF", pick(nil, "DEF"))
	require.Equal(t, "ONLY", pick([]string{"ONLY"}, "DEF"))
}
