// internal/httpserver/routes_auth.go
//
// Authentication and gated history:
//   - POST /auth/signup, /auth/login, /auth/logout
//   - GET  /auth/me    (require auth)
//   - GET  /games/mine (require auth)
//
// Signing in moves the guest's game history and win counters onto the account.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/sachgames/internal/auth"
	"github.com/robalobadob/sachgames/internal/stats"
)

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authRes struct {
	*auth.User
	Stats stats.WinStats `json:"stats"`
}

func (s *Server) mountAuth() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	s.r.With(s.Auth.Require).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		me, _ := auth.CurrentUser(r)
		writeJSON(w, http.StatusOK, me)
	})
	s.r.With(s.Auth.Require).Get("/games/mine", s.handleMyGames)
}

// handleSignup creates a new user, signs a JWT, sets the auth cookie and
// claims guest history.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := decode(w, r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.Auth.CreateUser(r.Context(), body.Username, body.Password)
	switch {
	case errors.Is(err, auth.ErrUsernameTaken):
		writeErr(w, http.StatusConflict, "Username taken")
		return
	case errors.Is(err, auth.ErrInvalidSignup):
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Msg("create user")
		writeErr(w, http.StatusInternalServerError, "signup_failed")
		return
	}
	s.signIn(w, r, u)
}

// handleLogin authenticates the user, sets the cookie and claims guest history.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := decode(w, r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.Auth.Authenticate(r.Context(), body.Username, body.Password)
	if err != nil {
		writeErr(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	s.signIn(w, r, u)
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request, u *auth.User) {
	tok, exp, err := s.Auth.SignJWT(u.ID, u.Username)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.Auth.SetAuthCookie(w, tok, exp)

	anon := auth.PeekAnonID(r)
	s.Auth.ClaimAnonymous(r.Context(), anon, u.ID)
	ws := s.Stats.Merge(r.Context(), anon, u.ID)
	writeJSON(w, http.StatusOK, authRes{User: u, Stats: ws})
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Auth.ClearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type gameRow struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Moves      int    `json:"moves"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// handleMyGames lists the 50 most recent games of the signed-in user.
func (s *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	me, _ := auth.CurrentUser(r)
	out := []gameRow{}
	if s.DB == nil {
		writeJSON(w, http.StatusOK, out)
		return
	}
	rows, err := s.DB.QueryContext(r.Context(),
		`SELECT id, kind, status, moves, started_at, COALESCE(finished_at,'')
		 FROM games WHERE owner_id=? ORDER BY started_at DESC LIMIT 50`, me.ID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "db_error")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var g gameRow
		if err := rows.Scan(&g.ID, &g.Kind, &g.Status, &g.Moves, &g.StartedAt, &g.FinishedAt); err != nil {
			log.Warn().Err(err).Msg("scan game row")
			continue
		}
		out = append(out, g)
	}
	writeJSON(w, http.StatusOK, out)
}
