// internal/httpserver/routes_hangman.go
//
// Hangman endpoints:
//   - POST /hangman/new    → start a game (optional fixed word for testing)
//   - POST /hangman/guess  → guess one letter
//   - GET  /hangman/{id}   → current board

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/sachgames/internal/hangman"
	"github.com/robalobadob/sachgames/internal/stats"
)

type hangmanSession struct {
	mu    sync.Mutex
	Owner string
	Game  *hangman.Game
}

func (s *Server) mountHangman(r chi.Router) {
	r.Post("/hangman/new", s.handleHangmanNew)
	r.Post("/hangman/guess", s.handleHangmanGuess)
	r.Get("/hangman/{id}", s.handleHangmanGet)
}

type hangmanNewReq struct {
	Word string `json:"word"` // optional fixed word (testing)
}

type hangmanView struct {
	GameID    string        `json:"gameId"`
	State     hangman.State `json:"state"`
	Masked    string        `json:"masked"`
	Length    int           `json:"length"`
	Guessed   []string      `json:"guessed"`
	Incorrect int           `json:"incorrect"`
	MaxWrong  int           `json:"maxWrong"`
	Remaining int           `json:"remaining"`
	Stage     int           `json:"stage"`
	Drawing   string        `json:"drawing"`
	Word      string        `json:"word,omitempty"`
}

type hangmanGuessRes struct {
	Hit bool `json:"hit"`
	hangmanView
	Win *winInfo `json:"win,omitempty"`
}

func viewHangman(g *hangman.Game) hangmanView {
	v := hangmanView{
		GameID:    g.ID,
		State:     g.State(),
		Masked:    g.Masked(),
		Length:    len([]rune(g.Word)),
		Guessed:   g.GuessedLetters(),
		Incorrect: g.Incorrect,
		MaxWrong:  g.MaxWrong,
		Remaining: g.Remaining(),
		Stage:     g.Stage(),
		Drawing:   g.Drawing(),
	}
	if v.State != hangman.StatePlaying {
		v.Word = g.Word
	}
	return v
}

func (s *Server) handleHangmanNew(w http.ResponseWriter, r *http.Request) {
	var req hangmanNewReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	if word := strings.TrimSpace(req.Word); word != "" && !validWord(word, len(word)) {
		writeErr(w, http.StatusBadRequest, "word must be letters A-Z")
		return
	}

	owner := s.Auth.Owner(w, r)
	g := hangman.New(req.Word, s.Config.Rules.MaxWrongGuesses)
	if err := s.hangman.Save(r.Context(), g.ID, &hangmanSession{Owner: owner, Game: g}); err != nil {
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordStart(r.Context(), g.ID, owner, stats.Hangman)
	writeJSON(w, http.StatusOK, viewHangman(g))
}

type hangmanGuessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}

func (s *Server) handleHangmanGuess(w http.ResponseWriter, r *http.Request) {
	var req hangmanGuessReq
	if err := decode(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.hangman.Get(r.Context(), req.GameID)
	if err != nil || !owns(r, sess.Owner) {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	before := len(sess.Game.History)
	hit, state, err := sess.Game.GuessString(req.Letter)
	switch {
	case errors.Is(err, hangman.ErrFinished):
		writeErr(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(sess.Game.History) > before {
		s.recordMove(r.Context(), sess.Game.ID, string(state))
	}

	out := hangmanGuessRes{Hit: hit, hangmanView: viewHangman(sess.Game)}
	if state == hangman.StateWon && len(sess.Game.History) > before {
		out.Win = s.recordWin(r.Context(), s.Auth.Owner(w, r), stats.Hangman, sess.Game.ID)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHangmanGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.hangman.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil || !owns(r, sess.Owner) {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, viewHangman(sess.Game))
}
