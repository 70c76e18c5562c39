package stats

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/sachgames/internal/db"
)

func TestParseGameID(t *testing.T) {
	for in, want := range map[string]GameID{"wordle": Wordle, " Hangman ": Hangman, "CROSSWORD": Crossword} {
		got, err := ParseGameID(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseGameID("chess")
	require.ErrorIs(t, err, ErrUnknownGame)
}

func TestRecordKeepsTotalInSync(t *testing.T) {
	var ws WinStats
	var err error
	for _, id := range []GameID{Wordle, Wordle, Hangman, Crossword} {
		ws, err = ws.Record(id)
		require.NoError(t, err)
	}
	require.Equal(t, WinStats{WordleWins: 2, HangmanWins: 1, CrosswordWins: 1, TotalWins: 4}, ws)

	same, err := ws.Record("chess")
	require.ErrorIs(t, err, ErrUnknownGame)
	require.Equal(t, ws, same)

	require.Equal(t, WinStats{HangmanWins: 2, TotalWins: 2}, WinStats{WordleWins: -1, HangmanWins: 2, TotalWins: 99}.Normalize())
}

func stores(t *testing.T) map[string]Store {
	sqlDB, err := db.OpenMigrated(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": NewSQLiteStore(sqlDB),
		"json":   NewJSONFileStore(filepath.Join(t.TempDir(), "data", "stats.json")),
	}
}

func TestTrackerAcrossStores(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			tr := NewTracker(s)

			require.Equal(t, WinStats{}, tr.LoadStats(ctx, "p1"))

			for i := 0; i < 3; i++ {
				_, err := tr.RecordWin(ctx, "p1", Wordle)
				require.NoError(t, err)
			}
			require.Equal(t, WinStats{WordleWins: 3, TotalWins: 3}, tr.LoadStats(ctx, "p1"))

			ws, err := tr.RecordWin(ctx, "p1", Crossword)
			require.NoError(t, err)
			require.Equal(t, WinStats{WordleWins: 3, CrosswordWins: 1, TotalWins: 4}, ws)

			_, err = tr.RecordWin(ctx, "p2", Hangman)
			require.NoError(t, err)
			require.Equal(t, 4, tr.LoadStats(ctx, "p1").TotalWins, "owners are independent")

			_, err = tr.RecordWin(ctx, "p1", "darts")
			require.ErrorIs(t, err, ErrUnknownGame)

			require.Equal(t, WinStats{}, tr.ResetStats(ctx, "p1"))
			require.Equal(t, WinStats{}, tr.LoadStats(ctx, "p1"))
			require.Equal(t, WinStats{HangmanWins: 1, TotalWins: 1}, tr.LoadStats(ctx, "p2"))
		})
	}
}

func TestJSONFileStoreCorruptFileReadsAsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	tr := NewTracker(NewJSONFileStore(path))
	ctx := context.Background()
	require.Equal(t, WinStats{}, tr.LoadStats(ctx, "p1"))

	ws, err := tr.RecordWin(ctx, "p1", Hangman)
	require.NoError(t, err)
	require.Equal(t, WinStats{HangmanWins: 1, TotalWins: 1}, ws)
	require.Equal(t, ws, tr.LoadStats(ctx, "p1"))
}

func TestJSONFileStoreRecomputesTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"p1":{"wordleWins":2,"hangmanWins":1,"totalWins":42}}`), 0o644))

	ws, err := NewJSONFileStore(path).Load(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, WinStats{WordleWins: 2, HangmanWins: 1, TotalWins: 3}, ws)
}

type failingStore struct{ saves int }

func (f *failingStore) Load(context.Context, string) (WinStats, error) {
	return WinStats{}, errors.New("disk on fire")
}

func (f *failingStore) Save(context.Context, string, WinStats) error {
	f.saves++
	return errors.New("disk on fire")
}

func TestTrackerSwallowsStorageFailures(t *testing.T) {
	fs := &failingStore{}
	tr := NewTracker(fs)
	ctx := context.Background()

	require.Equal(t, WinStats{}, tr.LoadStats(ctx, "p1"))
	ws, err := tr.RecordWin(ctx, "p1", Wordle)
	require.NoError(t, err)
	require.Equal(t, WinStats{WordleWins: 1, TotalWins: 1}, ws)
	require.Equal(t, WinStats{}, tr.ResetStats(ctx, "p1"))
	require.Equal(t, 2, fs.saves)
}

func TestTrackerMerge(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(NewMemoryStore())
	_, _ = tr.RecordWin(ctx, "anon", Wordle)
	_, _ = tr.RecordWin(ctx, "anon", Hangman)
	_, _ = tr.RecordWin(ctx, "user", Wordle)

	got := tr.Merge(ctx, "anon", "user")
	require.Equal(t, WinStats{WordleWins: 2, HangmanWins: 1, TotalWins: 3}, got)
	require.Equal(t, got, tr.LoadStats(ctx, "user"))
	require.Equal(t, WinStats{}, tr.LoadStats(ctx, "anon"))

	require.Equal(t, got, tr.Merge(ctx, "anon", "user"), "nothing left to move")
	require.Equal(t, got, tr.Merge(ctx, "user", "user"))
}
