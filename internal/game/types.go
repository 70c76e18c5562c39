// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent/empty).
//   - GuessResult: the ordered verdicts for one submitted guess.
//   - KeyboardHints: best verdict seen per letter across all guesses.
//   - Game: state for a single in-progress or finished game.

package game

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this position.
//   - "present": letter is in the answer at a different, unclaimed position.
//   - "absent":  letter is not in the answer, or all its occurrences are claimed.
//   - "empty":   nothing entered yet (display placeholder, never produced by Evaluate).
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictPresent Verdict = "present"
	VerdictAbsent  Verdict = "absent"
	VerdictEmpty   Verdict = "empty"
)

// Rank orders verdicts for keyboard hints: absent < present < correct.
// Empty and unknown values rank lowest.
func (v Verdict) Rank() int {
	switch v {
	case VerdictAbsent:
		return 1
	case VerdictPresent:
		return 2
	case VerdictCorrect:
		return 3
	default:
		return 0
	}
}

// LetterResult pairs a guessed letter with its verdict.
type LetterResult struct {
	Letter  string  `json:"letter"`
	Verdict Verdict `json:"verdict"`
}

// GuessResult is the ordered per-letter evaluation of one guess.
type GuessResult []LetterResult

// IsWin reports whether every letter is correct.
func (r GuessResult) IsWin() bool {
	if len(r) == 0 {
		return false
	}
	for _, l := range r {
		if l.Verdict != VerdictCorrect {
			return false
		}
	}
	return true
}

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string        // Unique game identifier (ULID).
	Answer   string        // The solution word (always uppercase).
	Rows     int           // Maximum number of guesses allowed (typically 6).
	Cols     int           // Number of letters per word (typically 5).
	Guesses  []string      // Guesses made so far (uppercased).
	Results  []GuessResult // Evaluation for each guess, same order as Guesses.
	Hints    KeyboardHints // Best verdict per letter so far.
	Finished bool          // True once the game is over (won or lost).
	Won      bool          // True if the game was finished with a win.
}
