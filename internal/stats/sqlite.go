package stats

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLiteStore keeps stats in the win_stats table.
type SQLiteStore struct{ db *sql.DB }

func NewSQLiteStore(db *sql.DB) *SQLiteStore { return &SQLiteStore{db: db} }

func (s *SQLiteStore) Load(ctx context.Context, owner string) (WinStats, error) {
	var ws WinStats
	err := s.db.QueryRowContext(ctx,
		`SELECT wordle_wins, hangman_wins, crossword_wins FROM win_stats WHERE owner_id=?`,
		owner,
	).Scan(&ws.WordleWins, &ws.HangmanWins, &ws.CrosswordWins)
	if errors.Is(err, sql.ErrNoRows) {
		return WinStats{}, nil
	}
	if err != nil {
		return WinStats{}, err
	}
	return ws.Normalize(), nil
}

func (s *SQLiteStore) Save(ctx context.Context, owner string, ws WinStats) error {
	ws = ws.Normalize()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO win_stats (owner_id, wordle_wins, hangman_wins, crossword_wins, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			wordle_wins    = excluded.wordle_wins,
			hangman_wins   = excluded.hangman_wins,
			crossword_wins = excluded.crossword_wins,
			updated_at     = excluded.updated_at`,
		owner, ws.WordleWins, ws.HangmanWins, ws.CrosswordWins, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
