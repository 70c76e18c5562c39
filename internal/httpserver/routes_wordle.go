// internal/httpserver/routes_wordle.go
//
// Wordle endpoints:
//   - POST /wordle/new    → start a game (optional fixed answer for testing)
//   - POST /wordle/guess  → score a guess, update hints, detect win/loss
//   - GET  /wordle/{id}   → current board
//
// The answer is only revealed once the game is finished.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/sachgames/internal/game"
	"github.com/robalobadob/sachgames/internal/stats"
)

type wordleSession struct {
	mu    sync.Mutex
	Owner string
	Game  *game.Game
}

func (s *Server) mountWordle(r chi.Router) {
	r.Post("/wordle/new", s.handleWordleNew)
	r.Post("/wordle/guess", s.handleWordleGuess)
	r.Get("/wordle/{id}", s.handleWordleGet)
}

type wordleNewReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}

type wordleNewRes struct {
	GameID string `json:"gameId"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

func (s *Server) handleWordleNew(w http.ResponseWriter, r *http.Request) {
	var req wordleNewReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Answer != "" && !validWord(req.Answer, s.Config.Rules.WordLength) {
		writeErr(w, http.StatusBadRequest, "answer must be letters A-Z of the configured length")
		return
	}

	owner := s.Auth.Owner(w, r)
	g := game.New(req.Answer, s.Config.Rules)
	if err := s.wordle.Save(r.Context(), g.ID, &wordleSession{Owner: owner, Game: g}); err != nil {
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordStart(r.Context(), g.ID, owner, stats.Wordle)
	writeJSON(w, http.StatusOK, wordleNewRes{GameID: g.ID, Rows: g.Rows, Cols: g.Cols})
}

type wordleGuessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type wordleView struct {
	GameID    string             `json:"gameId"`
	State     game.State         `json:"state"`
	Guesses   []string           `json:"guesses"`
	Results   []game.GuessResult `json:"results"`
	Hints     game.KeyboardHints `json:"hints"`
	Remaining int                `json:"remaining"`
	Answer    string             `json:"answer,omitempty"`
}

type wordleGuessRes struct {
	Result game.GuessResult `json:"result"`
	wordleView
	Win *winInfo `json:"win,omitempty"`
}

func viewWordle(g *game.Game) wordleView {
	v := wordleView{
		GameID:    g.ID,
		State:     g.State(),
		Guesses:   g.Guesses,
		Results:   g.Results,
		Hints:     g.Hints,
		Remaining: g.Remaining(),
	}
	if g.Finished {
		v.Answer = g.Answer
	}
	return v
}

func (s *Server) handleWordleGuess(w http.ResponseWriter, r *http.Request) {
	var req wordleGuessReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.wordle.Get(r.Context(), req.GameID)
	if err != nil || !owns(r, sess.Owner) {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	res, state, err := sess.Game.ApplyGuess(req.Guess)
	switch {
	case errors.Is(err, game.ErrFinished):
		writeErr(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	s.recordMove(r.Context(), sess.Game.ID, string(state))

	out := wordleGuessRes{Result: res, wordleView: viewWordle(sess.Game)}
	if state == game.StateWon {
		out.Win = s.recordWin(r.Context(), s.Auth.Owner(w, r), stats.Wordle, sess.Game.ID)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWordleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.wordle.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil || !owns(r, sess.Owner) {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, viewWordle(sess.Game))
}

// validWord reports whether w is exactly n letters A-Z (any case).
func validWord(w string, n int) bool {
	w = strings.ToUpper(strings.TrimSpace(w))
	if len(w) != n {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
