// internal/stats/stats.go
//
// Per-owner win counters.
//   - GameID names the three games that can be won.
//   - WinStats holds the counters; TotalWins is always the sum of the others.
//
// Owners are opaque strings: a user id for signed-in players, an anonymous
// cookie id otherwise.

package stats

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGame = errors.New("unknown game")

// GameID identifies a winnable game.
type GameID string

const (
	Wordle    GameID = "wordle"
	Hangman   GameID = "hangman"
	Crossword GameID = "crossword"
)

// ParseGameID accepts a game name in any case.
func ParseGameID(s string) (GameID, error) {
	switch id := GameID(strings.ToLower(strings.TrimSpace(s))); id {
	case Wordle, Hangman, Crossword:
		return id, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
	}
}

// WinStats holds one owner's win counters.
type WinStats struct {
	WordleWins    int `json:"wordleWins"`
	HangmanWins   int `json:"hangmanWins"`
	CrosswordWins int `json:"crosswordWins"`
	TotalWins     int `json:"totalWins"`
}

// Normalize clamps negative counters to zero and recomputes TotalWins.
func (s WinStats) Normalize() WinStats {
	s.WordleWins = max(s.WordleWins, 0)
	s.HangmanWins = max(s.HangmanWins, 0)
	s.CrosswordWins = max(s.CrosswordWins, 0)
	s.TotalWins = s.WordleWins + s.HangmanWins + s.CrosswordWins
	return s
}

// Record returns s with one more win for id.
func (s WinStats) Record(id GameID) (WinStats, error) {
	switch id {
	case Wordle:
		s.WordleWins++
	case Hangman:
		s.HangmanWins++
	case Crossword:
		s.CrosswordWins++
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return s.Normalize(), nil
}

// Store persists WinStats per owner. Load returns zero stats for an owner
// that has none.
type Store interface {
	Load(ctx context.Context, owner string) (WinStats, error)
	Save(ctx context.Context, owner string, s WinStats) error
}
