// cmd.go
//
// Command tree:
//   - serve (default)            → HTTP API
//   - stats show|reset --owner   → inspect or zero a player's win counters
//   - puzzle today [--reveal]    → print the crossword of the day
//   - wordle check TARGET GUESS  → score one guess in the terminal
//
// Global flags control logging: --log-level overrides LOG_LEVEL and --pretty
// switches zerolog to the console writer.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/sachgames/internal/auth"
	"github.com/robalobadob/sachgames/internal/config"
	"github.com/robalobadob/sachgames/internal/daily"
	"github.com/robalobadob/sachgames/internal/db"
	"github.com/robalobadob/sachgames/internal/game"
	"github.com/robalobadob/sachgames/internal/httpserver"
	"github.com/robalobadob/sachgames/internal/media"
	"github.com/robalobadob/sachgames/internal/puzzles"
	"github.com/robalobadob/sachgames/internal/stats"
	"github.com/robalobadob/sachgames/internal/ui"
	"github.com/robalobadob/sachgames/internal/words"
)

func newRootCmd() *cobra.Command {
	var (
		cfg      = config.Load()
		logLevel string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:          "sachgames",
		Short:        "Wordle, Hangman and Crossword with win-unlocked rewards",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(logLevel, pretty)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "zerolog level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-readable console logs")

	cmd.AddCommand(
		serveCmd(&cfg),
		statsCmd(&cfg),
		puzzleCmd(&cfg),
		wordleCmd(),
	)
	return cmd
}

func setupLogging(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// ---------------------------------- serve ----------------------------------

func serveCmd(cfg *config.Config) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $PORT or 5175)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	if err := words.Init(); err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	sqlDB, err := db.OpenMigrated(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer sqlDB.Close()

	catalog, err := puzzles.LoadEmbedded(cfg.Rules.GridSize)
	if err != nil {
		return err
	}
	statsStore, err := openStats(cfg, sqlDB)
	if err != nil {
		return err
	}

	client := media.NewClient(cfg.MediaBaseURL, cfg.MediaTimeout)
	collector := media.NewCollector(client, cfg.MediaMaxSources, media.Fallback())

	srv := httpserver.New(httpserver.Deps{
		Config:    cfg,
		DB:        sqlDB,
		Auth:      auth.New(sqlDB, cfg),
		Stats:     stats.NewTracker(statsStore),
		Daily:     daily.NewStore(sqlDB),
		Catalog:   catalog,
		Collector: collector,
		Rewards:   media.NewRewards(collector, cfg.MediaTimeout),
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("port", cfg.Port).
		Str("stats", string(cfg.StatsBackend)).
		Str("media", cfg.MediaBaseURL).
		Int("puzzles", catalog.Len()).
		Msg("starting sachgames")
	return srv.Run(ctx, ":"+cfg.Port)
}

// openStats picks the win-counter backend. sqlDB may be nil for backends
// that do not need it.
func openStats(cfg config.Config, sqlDB *sql.DB) (stats.Store, error) {
	switch cfg.StatsBackend {
	case config.StatsMemory:
		return stats.NewMemoryStore(), nil
	case config.StatsJSON:
		return stats.NewJSONFileStore(cfg.StatsFile), nil
	default:
		if sqlDB == nil {
			return nil, fmt.Errorf("stats backend %q needs a database", cfg.StatsBackend)
		}
		return stats.NewSQLiteStore(sqlDB), nil
	}
}

// ---------------------------------- stats ----------------------------------

func statsCmd(cfg *config.Config) *cobra.Command {
	var owner string

	withTracker := func(fn func(context.Context, *stats.Tracker) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			var sqlDB *sql.DB
			if cfg.StatsBackend == config.StatsSQLite {
				d, err := db.OpenMigrated(cfg.DBPath)
				if err != nil {
					return err
				}
				defer d.Close()
				sqlDB = d
			}
			st, err := openStats(*cfg, sqlDB)
			if err != nil {
				return err
			}
			return fn(cmd.Context(), stats.NewTracker(st))
		}
	}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Inspect or reset win counters",
	}
	cmd.PersistentFlags().StringVar(&owner, "owner", "", "user id or anonymous id (anon-...)")
	_ = cmd.MarkPersistentFlagRequired("owner")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print win counters",
			RunE: withTracker(func(ctx context.Context, t *stats.Tracker) error {
				fmt.Println(ui.Stats(t.LoadStats(ctx, owner)))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Zero win counters",
			RunE: withTracker(func(ctx context.Context, t *stats.Tracker) error {
				fmt.Println(ui.Stats(t.ResetStats(ctx, owner)))
				return nil
			}),
		},
	)
	return cmd
}

// --------------------------------- puzzle ----------------------------------

func puzzleCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Crossword catalog tools",
	}

	var (
		reveal bool
		date   string
	)
	today := &cobra.Command{
		Use:   "today",
		Short: "Print the crossword of the day",
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog, err := puzzles.LoadEmbedded(cfg.Rules.GridSize)
			if err != nil {
				return err
			}
			at := time.Now()
			if date != "" {
				if at, err = time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}
			i, p := catalog.ForDay(at, cfg.PuzzleEpoch)
			g, err := catalog.Grid(i)
			if err != nil {
				return err
			}
			fmt.Printf("%s  #%d  %s\n\n", daily.DateKey(at), i+1, p.Theme)
			fmt.Println(ui.Grid(g, reveal))
			fmt.Println()
			fmt.Println(ui.Clues(g))
			return nil
		},
	}
	today.Flags().BoolVar(&reveal, "reveal", false, "fill in the answers")
	today.Flags().StringVar(&date, "date", "", "YYYY-MM-DD (default today)")

	cmd.AddCommand(today)
	return cmd
}

// --------------------------------- wordle ----------------------------------

func wordleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Wordle tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check TARGET GUESS",
		Short: "Score GUESS against TARGET",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := checkWordle(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.GuessRow(res))
			if res.IsWin() {
				fmt.Fprintln(out, "solved")
			}
			return nil
		},
	})
	return cmd
}

// checkWordle scores guess against target the way the API does: trimmed and
// case-insensitive.
func checkWordle(target, guess string) (game.GuessResult, error) {
	norm := func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
	return game.Evaluate(norm(target), norm(guess))
}
