// internal/httpserver/token.go
//
// Game session tokens.
//
// Every game created through POST /game/new gets an HS256 JWT whose "gid"
// claim names that game. Guess and snapshot requests must present it as
// "Authorization: Bearer <token>" and may only touch the game it names.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var errNoToken = errors.New("missing bearer token")

// gameClaims binds a token to a single game.
type gameClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies game tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a signer using secret; tokens expire after ttl.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for gameID.
func (t *Tokens) Issue(gameID string) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, gameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// Verify checks signature and expiry and returns the bound game ID.
func (t *Tokens) Verify(raw string) (string, error) {
	if raw == "" {
		return "", errNoToken
	}
	var claims gameClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return "", err
	}
	if !tok.Valid || claims.GameID == "" {
		return "", errors.New("invalid token")
	}
	return claims.GameID, nil
}

// bearer extracts the token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ctxGameKey is the context key for the game ID a request is authorized for.
type ctxGameKey struct{}

// requireGameToken rejects requests without a valid game token and stores
// the token's game ID in the request context.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gid, err := s.tokens.Verify(bearer(r))
		if err != nil {
			log.Debug().Err(err).Msg("rejected game token")
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), ctxGameKey{}, gid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorizedFor reports whether the request's token names gameID.
func authorizedFor(r *http.Request, gameID string) bool {
	gid, _ := r.Context().Value(ctxGameKey{}).(string)
	return gid != "" && gid == gameID
}
