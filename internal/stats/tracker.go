// internal/stats/tracker.go
//
// Tracker is the stats sink the game handlers talk to.
//   - LoadStats never fails: a read error is logged and zeros are returned.
//   - RecordWin and ResetStats log and swallow write errors; the caller still
//     gets the updated counters so a game transition never depends on storage.
//   - Updates are read-modify-write, serialized inside this process only.

package stats

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

type Tracker struct {
	store Store
	mu    sync.Mutex
}

func NewTracker(s Store) *Tracker { return &Tracker{store: s} }

// LoadStats returns owner's counters, or zeros when they cannot be read.
func (t *Tracker) LoadStats(ctx context.Context, owner string) WinStats {
	ws, err := t.store.Load(ctx, owner)
	if err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("stats: load failed, using zeros")
		return WinStats{}
	}
	return ws.Normalize()
}

// RecordWin adds one win for game id. The only error is ErrUnknownGame.
func (t *Tracker) RecordWin(ctx context.Context, owner string, id GameID) (WinStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ws, err := t.LoadStats(ctx, owner).Record(id)
	if err != nil {
		return ws, err
	}
	if err := t.store.Save(ctx, owner, ws); err != nil {
		log.Warn().Err(err).Str("owner", owner).Str("game", string(id)).Msg("stats: save failed")
	}
	log.Info().Str("owner", owner).Str("game", string(id)).Int("total", ws.TotalWins).Msg("win recorded")
	return ws, nil
}

// ResetStats zeroes owner's counters.
func (t *Tracker) ResetStats(ctx context.Context, owner string) WinStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Save(ctx, owner, WinStats{}); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("stats: reset failed")
	}
	return WinStats{}
}

// Merge adds from's counters onto into and zeroes from. Used when a guest
// signs in so wins earned anonymously follow the account.
func (t *Tracker) Merge(ctx context.Context, from, into string) WinStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	dst := t.LoadStats(ctx, into)
	if from == "" || from == into {
		return dst
	}
	src := t.LoadStats(ctx, from)
	if src.TotalWins == 0 {
		return dst
	}
	merged := WinStats{
		WordleWins:    dst.WordleWins + src.WordleWins,
		HangmanWins:   dst.HangmanWins + src.HangmanWins,
		CrosswordWins: dst.CrosswordWins + src.CrosswordWins,
	}.Normalize()
	if err := t.store.Save(ctx, into, merged); err != nil {
		log.Warn().Err(err).Str("owner", into).Msg("stats: merge save failed")
		return dst
	}
	if err := t.store.Save(ctx, from, WinStats{}); err != nil {
		log.Warn().Err(err).Str("owner", from).Msg("stats: merge clear failed")
	}
	return merged
}
