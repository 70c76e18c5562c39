// internal/httpserver/server.go
//
// HTTP server wiring for the sachgames backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): /wordle/*, /hangman/*, /crossword/*.
//   - Win tracking and rewards (optional auth): /stats, /gallery, /rewards/{gameId}.
//   - Auth endpoints: /auth/*, plus /games/mine (require auth).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token is present;
//     guests are identified by an anonymous cookie instead.
//   - On every win the stats sink is updated first, then a reward fetch is
//     started in the background; the response never waits for media.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/sachgames/internal/auth"
	"github.com/robalobadob/sachgames/internal/config"
	"github.com/robalobadob/sachgames/internal/daily"
	"github.com/robalobadob/sachgames/internal/media"
	"github.com/robalobadob/sachgames/internal/puzzles"
	"github.com/robalobadob/sachgames/internal/stats"
	"github.com/robalobadob/sachgames/internal/store"
	"github.com/robalobadob/sachgames/internal/words"
)

// Deps are the collaborators the handlers need. DB may be nil, in which case
// game history is not recorded.
type Deps struct {
	Config    config.Config
	DB        *sql.DB
	Auth      *auth.Service
	Stats     *stats.Tracker
	Daily     *daily.Store
	Catalog   *puzzles.Catalog
	Collector *media.Collector
	Rewards   *media.Rewards
	Now       func() time.Time
}

// Server bundles router, in-memory session stores and dependencies.
type Server struct {
	Deps
	r *chi.Mux

	wordle    store.Store[*wordleSession]
	hangman   store.Store[*hangmanSession]
	crossword store.Store[*crosswordSession]
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.Now == nil {
		d.Now = time.Now
	}
	s := &Server{
		Deps:      d,
		r:         chi.NewRouter(),
		wordle:    store.NewMemoryStore[*wordleSession](),
		hangman:   store.NewMemoryStore[*hangmanSession](),
		crossword: store.NewMemoryStore[*crosswordSession](),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(d.Config.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "sachgames",
			"endpoints": []string{
				"/health", "POST /wordle/new", "POST /wordle/guess", "POST /hangman/new", "POST /hangman/guess",
				"POST /crossword/new", "/crossword/{id}", "/stats", "/gallery", "/rewards/{gameId}", "/auth/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, h := words.Stats()
		out := map[string]any{"answers": a, "hangman": h, "puzzles": s.Catalog.Len()}
		if check := r.URL.Query().Get("check"); check != "" {
			out["isAnswer"] = words.IsAnswer(check)
		}
		writeJSON(w, http.StatusOK, out)
	})

	// Games, stats and rewards: OPTIONAL AUTH (guests can play)
	s.r.Group(func(r chi.Router) {
		r.Use(s.Auth.Optional)
		s.mountWordle(r)
		s.mountHangman(r)
		s.mountCrossword(r)
		s.mountStats(r)
	})

	s.mountAuth()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests and custom http.Server setups).
func (s *Server) Router() chi.Router { return s.r }

// Run serves on addr until ctx is cancelled, then shuts down gracefully and
// waits for in-flight reward fetches.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := hs.Shutdown(shutdownCtx)
	if s.Rewards != nil {
		s.Rewards.Wait()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs method, path, status and duration at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("reqId", chimw.GetReqID(r.Context())).
			Msg("http")
	})
}

// ------------------------------- helpers -----------------------------------

const maxBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// owns reports whether the session owner matches the caller, either as the
// signed-in user or through the anonymous cookie.
func owns(r *http.Request, owner string) bool {
	if id, ok := auth.CurrentUser(r); ok && id.ID == owner {
		return true
	}
	return auth.PeekAnonID(r) == owner
}
