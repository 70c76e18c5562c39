// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new games with rules-driven dimensions (default 6x5).
//   - Validate and apply guesses (length, alphabetic A–Z).
//   - Score guesses with Evaluate and fold them into keyboard hints.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Answers are provided by the words package when none is given.
//   - The attempt limit lives here, not in Evaluate.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/robalobadob/sachgames/internal/config"
	"github.com/robalobadob/sachgames/internal/words"
)

// ErrFinished is returned when a guess is applied to a finished game.
var ErrFinished = errors.New("game finished")

// New constructs a new game instance.
// If withAnswer is empty, a random answer is chosen from the words package.
func New(withAnswer string, rules config.Rules) *Game {
	ans := withAnswer
	if ans == "" {
		ans = words.RandomAnswer()
	}
	ans = strings.ToUpper(strings.TrimSpace(ans))
	cols := rules.WordLength
	if cols <= 0 {
		cols = len([]rune(ans))
	}
	return &Game{
		ID:      ulid.Make().String(),
		Answer:  ans,
		Rows:    rules.MaxGuesses,
		Cols:    cols,
		Guesses: []string{},
		Results: []GuessResult{},
		Hints:   KeyboardHints{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the per-letter result, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters and alphabetic A–Z.
//
// State transitions:
//   - If the guess equals the answer → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (GuessResult, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), fmt.Errorf("%w: guess must be %d letters A-Z", ErrInvalidInput, g.Cols)
	}

	res, err := Evaluate(g.Answer, guess)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, guess)
	g.Results = append(g.Results, res)
	g.Hints.Apply(res)

	if guess == g.Answer {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return res, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining reports how many guesses are left.
func (g *Game) Remaining() int {
	if r := g.Rows - len(g.Guesses); r > 0 {
		return r
	}
	return 0
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
