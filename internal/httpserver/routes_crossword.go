// internal/httpserver/routes_crossword.go
//
// Crossword endpoints (one puzzle of the day, rotated through the catalog):
//   - POST /crossword/new               → start today's puzzle
//   - GET  /crossword/leaderboard       → fastest solves for a date (?date=YYYY-MM-DD)
//   - GET  /crossword/{id}              → current board
//   - POST /crossword/{id}/select       → click a cell (keeps the active clue if it covers the cell)
//   - POST /crossword/{id}/clue         → select a clue from the list
//   - POST /crossword/{id}/cell         → type or clear a letter
//   - POST /crossword/{id}/hint         → toggle the answer reveal for a clue
//   - POST /crossword/{id}/reset        → start a fresh instance of the same puzzle
//
// The win is detected inside the session; its callback records stats, the
// daily result and the reward exactly once per instance, credited to whoever
// entered the final letter (a guest who signed up mid-puzzle is credited as
// the account).

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/sachgames/internal/crossword"
	"github.com/robalobadob/sachgames/internal/daily"
	"github.com/robalobadob/sachgames/internal/stats"
)

type crosswordSession struct {
	mu    sync.Mutex // serializes moves so a win belongs to one request
	Owner string
	Index int
	Theme string
	Date  string
	Game  *crossword.Session

	round  int      // bumped by reset, part of the reward key
	winner string   // owner of the current move, credited on a win
	win    *winInfo // set by the win callback, consumed by the cell handler
}

func (c *crosswordSession) rewardKey() string {
	if c.round == 0 {
		return c.Game.ID
	}
	return c.Game.ID + "-" + strconv.Itoa(c.round)
}

func (s *Server) mountCrossword(r chi.Router) {
	r.Post("/crossword/new", s.handleCrosswordNew)
	r.Get("/crossword/leaderboard", s.handleCrosswordLeaderboard)
	r.Route("/crossword/{id}", func(r chi.Router) {
		r.Get("/", s.handleCrosswordGet)
		r.Post("/select", s.handleCrosswordSelect)
		r.Post("/clue", s.handleCrosswordClue)
		r.Post("/cell", s.handleCrosswordCell)
		r.Post("/hint", s.handleCrosswordHint)
		r.Post("/reset", s.handleCrosswordReset)
	})
}

type crosswordView struct {
	crossword.View
	Theme       string `json:"theme"`
	Index       int    `json:"puzzleIndex"`
	Date        string `json:"date"`
	SolvedToday bool   `json:"solvedToday"`
}

// viewCrossword renders c; SolvedToday is looked up for owner, the requester.
func (s *Server) viewCrossword(ctx context.Context, c *crosswordSession, owner string) crosswordView {
	v := crosswordView{View: c.Game.Snapshot(), Theme: c.Theme, Index: c.Index, Date: c.Date}
	if s.Daily != nil {
		solved, err := s.Daily.AlreadySolved(ctx, owner, c.Date)
		if err != nil {
			log.Warn().Err(err).Msg("daily: already solved lookup")
		}
		v.SolvedToday = solved
	}
	return v
}

func (s *Server) handleCrosswordNew(w http.ResponseWriter, r *http.Request) {
	now := s.Now()
	idx, p := s.Catalog.ForDay(now, s.Config.PuzzleEpoch)
	g, err := s.Catalog.Grid(idx)
	if err != nil {
		log.Error().Err(err).Int("puzzle", idx).Msg("build crossword")
		writeErr(w, http.StatusInternalServerError, "puzzle_unavailable")
		return
	}

	c := &crosswordSession{
		Owner: s.Auth.Owner(w, r),
		Index: idx,
		Theme: p.Theme,
		Date:  daily.DateKey(now),
	}
	c.Game = crossword.NewSession(g, func() { s.crosswordWon(c) })

	if err := s.crossword.Save(r.Context(), c.Game.ID, c); err != nil {
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordStart(r.Context(), c.Game.ID, c.Owner, stats.Crossword)
	writeJSON(w, http.StatusOK, s.viewCrossword(r.Context(), c, c.Owner))
}

// crosswordWon runs synchronously at the end of the winning Enter call, after
// the session lock is released and while the handler holds c.mu.
func (s *Server) crosswordWon(c *crosswordSession) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	owner := c.winner
	if owner == "" {
		owner = c.Owner
	}
	elapsed := c.Game.Snapshot().ElapsedMs
	c.win = s.recordWin(ctx, owner, stats.Crossword, c.rewardKey())

	if s.Daily == nil {
		return
	}
	inserted, err := s.Daily.InsertResult(ctx, daily.Result{
		OwnerID:     owner,
		Date:        c.Date,
		PuzzleIndex: c.Index,
		Theme:       c.Theme,
		ElapsedMs:   elapsed,
	})
	if err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("daily: insert result")
		return
	}
	log.Info().Str("owner", owner).Int64("elapsedMs", elapsed).Bool("first", inserted).Msg("crossword solved")
}

// crosswordFor looks up the {id} session and checks ownership.
func (s *Server) crosswordFor(w http.ResponseWriter, r *http.Request) (*crosswordSession, bool) {
	c, err := s.crossword.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil || !owns(r, c.Owner) {
		writeErr(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return c, true
}

func (s *Server) handleCrosswordGet(w http.ResponseWriter, r *http.Request) {
	c, ok := s.crosswordFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.viewCrossword(r.Context(), c, s.Auth.Owner(w, r)))
}

type cellReq struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

type selectRes struct {
	Selected int              `json:"selectedClue"`
	Accepted bool             `json:"accepted"` // false when the click hit a blocked or off-grid cell
	Cursor   *crossword.Coord `json:"cursor,omitempty"`
}

func (s *Server) handleCrosswordSelect(w http.ResponseWriter, r *http.Request) {
	c, ok := s.crosswordFor(w, r)
	if !ok {
		return
	}
	var req cellReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	clue, accepted := c.Game.SelectCell(req.Row, req.Col)
	out := selectRes{Selected: clue, Accepted: accepted}
	if at, ok := c.Game.Cursor(); ok {
		out.Cursor = &at
	}
	writeJSON(w, http.StatusOK, out)
}

type clueReq struct {
	Clue int `json:"clue"`
}

func (s *Server) handleCrosswordClue(w http.ResponseWriter, r *http.Request) {
	c, ok := s.crosswordFor(w, r)
	if !ok {
		return
	}
	var req clueReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	at, err := c.Game.SelectClue(req.Clue)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, selectRes{Selected: req.Clue, Accepted: true, Cursor: &at})
}

type cellRes struct {
	Next     crossword.Coord  `json:"next"`
	Moved    bool             `json:"moved"`
	Status   crossword.Status `json:"status"`
	Progress map[string]int   `json:"progress"`
	Win      *winInfo         `json:"win,omitempty"`
}

func (s *Server) handleCrosswordCell(w http.ResponseWriter, r *http.Request) {
	c, ok := s.crosswordFor(w, r)
	if !ok {
		return
	}
	var req cellReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.win = nil
	c.winner = s.Auth.Owner(w, r)
	next, moved, err := c.Game.Enter(req.Row, req.Col, req.Letter)
	switch {
	case errors.Is(err, crossword.ErrBlockedCell), errors.Is(err, crossword.ErrInvalidLetter):
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	v := c.Game.Snapshot()
	s.recordMove(r.Context(), c.Game.ID, string(v.Status))
	writeJSON(w, http.StatusOK, cellRes{
		Next:     next,
		Moved:    moved,
		Status:   v.Status,
		Progress: v.Progress,
		Win:      c.win,
	})
}

type hintRes struct {
	Clue   int    `json:"clue"`
	Shown  bool   `json:"shown"`
	Answer string `json:"answer,omitempty"`
}

func (s *Server) handleCrosswordHint(w http.ResponseWriter, r *http.Request) {
	c, ok := s.crosswordFor(w, r)
	if !ok {
		return
	}
	var req clueReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	shown, answer, err := c.Game.ToggleHint(req.Clue)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, hintRes{Clue: req.Clue, Shown: shown, Answer: answer})
}

func (s *Server) handleCrosswordReset(w http.ResponseWriter, r *http.Request) {
	c, ok := s.crosswordFor(w, r)
	if !ok {
		return
	}
	c.mu.Lock()
	c.Game.Reset()
	c.round++
	c.win = nil
	c.mu.Unlock()
	writeJSON(w, http.StatusOK, s.viewCrossword(r.Context(), c, s.Auth.Owner(w, r)))
}

type leaderboardRes struct {
	Date string        `json:"date"`
	Rows []daily.LBRow `json:"rows"`
}

func (s *Server) handleCrosswordLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeErr(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = daily.DefaultLeaderboard
	}
	limit = min(limit, daily.MaxLeaderboard)

	if s.Daily == nil {
		writeJSON(w, http.StatusOK, leaderboardRes{Date: date, Rows: []daily.LBRow{}})
		return
	}
	rows, err := s.Daily.Leaderboard(r.Context(), date, limit)
	if err != nil {
		log.Error().Err(err).Msg("daily: leaderboard")
		writeErr(w, http.StatusInternalServerError, "leaderboard_failed")
		return
	}
	if rows == nil {
		rows = []daily.LBRow{}
	}
	writeJSON(w, http.StatusOK, leaderboardRes{Date: date, Rows: rows})
}
