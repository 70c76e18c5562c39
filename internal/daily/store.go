// internal/daily/store.go
//
// SQLite persistence for daily crossword solves.
//   - One row per (owner, date); later solves on the same day are ignored.
//   - Leaderboard orders by elapsed time, then by who finished first.

package daily

import (
	"context"
	"database/sql"
)

// Result is one owner's solve of the puzzle of the day.
type Result struct {
	OwnerID     string `json:"ownerId"`
	Date        string `json:"date"`
	PuzzleIndex int    `json:"puzzleIndex"`
	Theme       string `json:"theme"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// LBRow is one leaderboard line. Name is the username, or "anonymous"
// for cookie-only owners.
type LBRow struct {
	OwnerID   string `json:"ownerId"`
	Name      string `json:"name"`
	ElapsedMs int64  `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadySolved reports whether owner has a result for date.
func (s *Store) AlreadySolved(ctx context.Context, ownerID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE owner_id=? AND date=?`,
		ownerID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r. inserted is false when the owner already had a
// result for that date.
func (s *Store) InsertResult(ctx context.Context, r Result) (inserted bool, err error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_results (owner_id, date, puzzle_index, theme, elapsed_ms)
		VALUES (?, ?, ?, ?, ?)`,
		r.OwnerID, r.Date, r.PuzzleIndex, r.Theme, r.ElapsedMs,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Leaderboard sizes: the default page and the largest page served.
const (
	DefaultLeaderboard = 20
	MaxLeaderboard     = 100
)

// Leaderboard returns the fastest solves for date. limit defaults to
// DefaultLeaderboard and is capped at MaxLeaderboard.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = DefaultLeaderboard
	}
	limit = min(limit, MaxLeaderboard)
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.owner_id, COALESCE(u.username, 'anonymous'), d.elapsed_ms
		FROM daily_results d
		LEFT JOIN users u ON u.id = d.owner_id
		WHERE d.date=?
		ORDER BY d.elapsed_ms ASC, d.created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.OwnerID, &r.Name, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
