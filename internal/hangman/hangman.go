// internal/hangman/hangman.go
//
// Hangman rules and session engine.
// Responsibilities:
//   - Pure win/loss predicates over (word, guessed set, wrong count).
//   - A single-session Game that applies letter guesses and tracks state.
//   - Display helpers: masked word, per-letter status, gallows stage.
//
// Notes:
//   - Words and guesses are uppercase A–Z.
//   - Repeating an already guessed letter is a no-op, not a wrong guess.
package hangman

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/robalobadob/sachgames/internal/words"
)

var (
	ErrInvalidLetter = errors.New("guess must be a single letter A-Z")
	ErrFinished      = errors.New("game finished")
)

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// LetterStatus classifies an alphabet key for display.
type LetterStatus string

const (
	LetterCorrect   LetterStatus = "correct"
	LetterIncorrect LetterStatus = "incorrect"
	LetterUnused    LetterStatus = "unused"
)

// IsWon reports whether every distinct letter of word has been guessed.
func IsWon(word string, guessed mapset.Set[rune]) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !guessed.Has(r) {
			return false
		}
	}
	return true
}

// IsLost reports whether the wrong-guess count has reached the threshold.
func IsLost(incorrect, threshold int) bool {
	return threshold > 0 && incorrect >= threshold
}

// Game holds the state of a single Hangman session.
type Game struct {
	ID        string
	Word      string
	Guessed   mapset.Set[rune]
	History   []rune // guesses in the order they were made
	Incorrect int
	MaxWrong  int
	state     State
}

// New constructs a game. If word is empty a random Hangman word is chosen.
func New(word string, maxWrong int) *Game {
	if word == "" {
		word = words.RandomHangmanWord()
	}
	return &Game{
		ID:       ulid.Make().String(),
		Word:     strings.ToUpper(strings.TrimSpace(word)),
		Guessed:  mapset.New[rune](),
		MaxWrong: maxWrong,
		state:    StatePlaying,
	}
}

// Guess applies one letter. hit reports whether the letter occurs in the word.
func (g *Game) Guess(letter rune) (hit bool, st State, err error) {
	if g.state != StatePlaying {
		return false, g.state, ErrFinished
	}
	letter = unicode.ToUpper(letter)
	if letter < 'A' || letter > 'Z' {
		return false, g.state, ErrInvalidLetter
	}

	hit = strings.ContainsRune(g.Word, letter)
	if g.Guessed.Has(letter) {
		return hit, g.state, nil
	}
	g.Guessed.Put(letter)
	g.History = append(g.History, letter)
	if !hit {
		g.Incorrect++
	}

	switch {
	case IsWon(g.Word, g.Guessed):
		g.state = StateWon
	case IsLost(g.Incorrect, g.MaxWrong):
		g.state = StateLost
	}
	return hit, g.state, nil
}

// GuessString applies a guess given as text; it must be exactly one letter.
func (g *Game) GuessString(s string) (bool, State, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		if g.state != StatePlaying {
			return false, g.state, ErrFinished
		}
		return false, g.state, ErrInvalidLetter
	}
	r, _ := utf8.DecodeRuneInString(s)
	return g.Guess(r)
}

// State reports the current lifecycle state.
func (g *Game) State() State { return g.state }

// Masked renders the word with unguessed letters as underscores, space separated.
func (g *Game) Masked() string {
	parts := make([]string, 0, len(g.Word))
	for _, r := range g.Word {
		if g.Guessed.Has(r) {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// LetterStatus reports how an alphabet key should be shown.
func (g *Game) LetterStatus(r rune) LetterStatus {
	r = unicode.ToUpper(r)
	if !g.Guessed.Has(r) {
		return LetterUnused
	}
	if strings.ContainsRune(g.Word, r) {
		return LetterCorrect
	}
	return LetterIncorrect
}

// GuessedLetters returns the guessed letters in alphabetical order.
func (g *Game) GuessedLetters() []string {
	out := make([]string, 0, g.Guessed.Size())
	g.Guessed.Each(func(r rune) {
		out = append(out, string(r))
	})
	sort.Strings(out)
	return out
}

// Remaining reports how many wrong guesses are left before the game is lost.
func (g *Game) Remaining() int {
	if r := g.MaxWrong - g.Incorrect; r > 0 {
		return r
	}
	return 0
}
