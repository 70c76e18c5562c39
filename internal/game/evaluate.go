package game

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a guess cannot be evaluated against the target.
var ErrInvalidInput = errors.New("invalid input")

// Evaluate classifies each letter of guess against target.
//
// Pass 1 marks exact positions as correct and claims those target slots.
// Pass 2 walks the remaining guess letters left to right; each one claims the
// first unclaimed target slot holding the same letter (present) or stays absent.
// Claiming target slots keeps correct+present for a letter at or below its
// count in the target.
//
// Comparison is exact (case-sensitive); callers normalize case.
func Evaluate(target, guess string) (GuessResult, error) {
	t := []rune(target)
	g := []rune(guess)
	if len(t) != len(g) {
		return nil, fmt.Errorf("%w: guess has %d letters, target has %d", ErrInvalidInput, len(g), len(t))
	}

	n := len(t)
	used := make([]bool, n)
	verdicts := make([]Verdict, n)

	for i := 0; i < n; i++ {
		if g[i] == t[i] {
			verdicts[i] = VerdictCorrect
			used[i] = true
		} else {
			verdicts[i] = VerdictAbsent
		}
	}

	for i := 0; i < n; i++ {
		if verdicts[i] != VerdictAbsent {
			continue
		}
		for j := 0; j < n; j++ {
			if !used[j] && g[i] == t[j] {
				verdicts[i] = VerdictPresent
				used[j] = true
				break
			}
		}
	}

	out := make(GuessResult, n)
	for i := range g {
		out[i] = LetterResult{Letter: string(g[i]), Verdict: verdicts[i]}
	}
	return out, nil
}
