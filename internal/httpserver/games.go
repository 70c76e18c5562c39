// internal/httpserver/games.go
//
// Shared plumbing for the three games:
//   - Best-effort game history rows in the games table (start, moves, finish).
//   - The win hook: record the win in the stats sink, then start the reward
//     fetch. Storage and media failures are logged, never returned.

package httpserver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/sachgames/internal/stats"
)

// winInfo is attached to a response when the request completed a game.
type winInfo struct {
	Stats     stats.WinStats `json:"stats"`
	RewardKey string         `json:"rewardKey"`
}

// recordWin updates the owner's stats and then starts the reward prefetch
// keyed by the game id.
func (s *Server) recordWin(ctx context.Context, owner string, id stats.GameID, gameID string) *winInfo {
	ws, err := s.Stats.RecordWin(ctx, owner, id)
	if err != nil {
		log.Error().Err(err).Str("game", string(id)).Msg("record win")
	}
	if s.Rewards != nil {
		s.Rewards.Prefetch(gameID)
	}
	return &winInfo{Stats: ws, RewardKey: gameID}
}

// recordStart inserts a history row for a new game.
func (s *Server) recordStart(ctx context.Context, gameID, owner string, kind stats.GameID) {
	if s.DB == nil {
		return
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO games (id, owner_id, kind, status, moves, started_at) VALUES (?,?,?,?,0,?)`,
		gameID, owner, string(kind), "playing", s.Now().UTC().Format(time.RFC3339))
	if err != nil {
		log.Warn().Err(err).Str("gameId", gameID).Msg("insert game row")
	}
}

// recordMove bumps the move counter and, when status is final, closes the
// row. Runs in one best-effort transaction.
func (s *Server) recordMove(ctx context.Context, gameID, status string) {
	if s.DB == nil {
		return
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin game tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE games SET moves = moves + 1 WHERE id=?`, gameID); err != nil {
		log.Warn().Err(err).Msg("update moves")
	}
	if status == "won" || status == "lost" {
		if _, err := tx.ExecContext(ctx, `UPDATE games SET status=?, finished_at=? WHERE id=?`,
			status, s.Now().UTC().Format(time.RFC3339), gameID); err != nil {
			log.Warn().Err(err).Msg("finish game")
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit game tx")
	}
}
