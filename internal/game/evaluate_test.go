package game

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func verdicts(r GuessResult) []Verdict {
	out := make([]Verdict, len(r))
	for i, l := range r {
		out[i] = l.Verdict
	}
	return out
}

func TestEvaluate(t *testing.T) {
	const (
		C = VerdictCorrect
		P = VerdictPresent
		A = VerdictAbsent
	)
	tests := []struct {
		name   string
		target string
		guess  string
		want   []Verdict
	}{
		{name: "exact match", target: "CRANE", guess: "CRANE", want: []Verdict{C, C, C, C, C}},
		{name: "nothing shared", target: "CRANE", guess: "FOLKS", want: []Verdict{A, A, A, A, A}},
		{name: "all displaced", target: "ABCDE", guess: "EABCD", want: []Verdict{P, P, P, P, P}},
		// S-P-E-E-D vs E-R-A-S-E: first E claims target[2], S claims target[0],
		// last E claims target[3].
		{name: "duplicate letters claimed left to right", target: "SPEED", guess: "ERASE", want: []Verdict{P, A, A, P, P}},
		// Only one L in target; the exact hit claims it before the displaced one.
		{name: "exact hit wins over earlier duplicate", target: "WORLD", guess: "LOLLY", want: []Verdict{A, C, A, C, A}},
		// Target has one E and the exact hit claims it first.
		{name: "surplus duplicates are absent", target: "CRANE", guess: "EERIE", want: []Verdict{A, A, P, A, C}},
		{name: "repeated target letter both present", target: "ABBEY", guess: "BXXBX", want: []Verdict{P, A, A, P, A}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.target, tt.guess)
			require.NoError(t, err)
			require.Equal(t, tt.want, verdicts(got))
			for i, l := range got {
				require.Equal(t, string(tt.guess[i]), l.Letter)
			}
		})
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := Evaluate("CRANE", "CRANES")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Evaluate("CRANE", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluateSelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"SPEED", "ABBEY", "EERIE", "MAMMA"} {
		got, err := Evaluate(w, w)
		require.NoError(t, err)
		require.True(t, got.IsWin(), w)
	}
}

// For every letter, correct+present never exceeds its count in either word.
func TestEvaluateLetterCountBound(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const alphabet = "ABCDE"
	randWord := func() string {
		var b strings.Builder
		for i := 0; i < 5; i++ {
			b.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		return b.String()
	}

	for n := 0; n < 2000; n++ {
		target, guess := randWord(), randWord()
		res, err := Evaluate(target, guess)
		require.NoError(t, err)

		hits := map[string]int{}
		for _, l := range res {
			if l.Verdict == VerdictCorrect || l.Verdict == VerdictPresent {
				hits[l.Letter]++
			}
		}
		for letter, c := range hits {
			require.LessOrEqual(t, c, strings.Count(target, letter), "target=%s guess=%s", target, guess)
			require.LessOrEqual(t, c, strings.Count(guess, letter), "target=%s guess=%s", target, guess)
		}
		require.Equal(t, target == guess, res.IsWin())
	}
}

func TestGuessResultIsWinEmpty(t *testing.T) {
	require.False(t, GuessResult{}.IsWin())
}
