// internal/auth/auth.go
//
// Tokens, cookies and request identity.
// Responsibilities:
//   - Sign and verify HS256 JWTs carrying {id, username}.
//   - Set/clear the auth cookie (credentials-friendly attributes in production).
//   - Optional and required auth middleware.
//   - Owner: the identity win stats are keyed by (user id, or an anonymous
//     cookie id for guests).

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/sachgames/internal/config"
)

const anonCookieName = "sachgames_anon"

var ErrInvalidToken = errors.New("invalid token")

// Identity is placed into request context by the auth middleware.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ctxUserKey struct{}

// Service bundles the user table with token and cookie settings.
type Service struct {
	db         *sql.DB
	secret     []byte
	expires    time.Duration
	cookieName string
	secure     bool
	cost       int
}

// New builds a Service from cfg.
func New(db *sql.DB, cfg config.Config) *Service {
	days := cfg.JWTExpiresDays
	if days <= 0 {
		days = 14
	}
	return &Service{
		db:         db,
		secret:     []byte(cfg.JWTSecret),
		expires:    time.Duration(days) * 24 * time.Hour,
		cookieName: cfg.CookieName,
		secure:     cfg.Production,
		cost:       bcrypt.DefaultCost,
	}
}

// SignJWT creates an HS256 JWT with id/username and the configured expiry.
func (s *Service) SignJWT(id, username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.expires)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString(s.secret)
	return ss, exp, err
}

// ParseJWT verifies a token and returns its identity.
func (s *Service) ParseJWT(tokenStr string) (*Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: id, Username: username}, nil
}

func (s *Service) sameSite() http.SameSite {
	if s.secure {
		return http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	return http.SameSiteLaxMode
}

// SetAuthCookie writes the auth token cookie.
func (s *Service) SetAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
		Expires:  exp,
	})
}

// ClearAuthCookie deletes the auth token cookie.
func (s *Service) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func (s *Service) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cookieName); err == nil {
		return c.Value
	}
	return ""
}

// identify resolves the request's token to a still-existing user.
func (s *Service) identify(r *http.Request) (*Identity, error) {
	tok := s.bearerOrCookie(r)
	if tok == "" {
		return nil, ErrInvalidToken
	}
	id, err := s.ParseJWT(tok)
	if err != nil {
		return nil, err
	}
	if _, err := s.FindByID(r.Context(), id.ID); err != nil {
		return nil, ErrInvalidToken
	}
	return id, nil
}

// Optional decorates requests with the user identity when a valid token is
// present. It never rejects; guests pass through.
func (s *Service) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, err := s.identify(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, id))
		}
		next.ServeHTTP(w, r)
	})
}

// Require enforces a valid JWT and injects the identity into the context.
func (s *Service) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.bearerOrCookie(r) == "" {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		id, err := s.identify(r)
		if err != nil {
			http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxUserKey{}, id)))
	})
}

// CurrentUser returns the identity set by Optional/Require.
func CurrentUser(r *http.Request) (*Identity, bool) {
	id, _ := r.Context().Value(ctxUserKey{}).(*Identity)
	return id, id != nil
}

// PeekAnonID returns the anonymous cookie id without creating one.
func PeekAnonID(r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil {
		return c.Value
	}
	return ""
}

// AnonID returns the anonymous cookie id, setting a new one if missing.
func (s *Service) AnonID(w http.ResponseWriter, r *http.Request) string {
	if id := PeekAnonID(r); id != "" {
		return id
	}
	id := "anon-" + ulid.Make().String()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	// Make the id visible to later reads within the same request.
	r.AddCookie(&http.Cookie{Name: anonCookieName, Value: id})
	return id
}

// Owner is the key win stats and game history are stored under: the signed-in
// user's id, else the anonymous cookie id.
func (s *Service) Owner(w http.ResponseWriter, r *http.Request) string {
	if id, ok := CurrentUser(r); ok {
		return id.ID
	}
	return s.AnonID(w, r)
}
