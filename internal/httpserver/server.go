// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Daily Challenge endpoints: mounted under /daily (routes_daily.go).
//   - Serving with graceful shutdown.
//
// Notes:
//   - Games live in the session store as values; every guess goes through
//     store.Update so concurrent guesses on one game are applied in order.
//   - Guess and snapshot endpoints require the game's bearer token (token.go).
//   - Run sweeps sessions older than the token lifetime every sweepEvery.
//   - CORS is origin-aware and credentials-enabled so the anon cookie works.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/knowledge"
	"github.com/robalobadob/wordle/internal/scoring"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/word"
	"github.com/robalobadob/wordle/internal/words"
)

// ErrNoWords is returned by New when Options.Words is missing.
var ErrNoWords = errors.New("httpserver: word list is required")

// sweepEvery is how often Run drops sessions older than the token lifetime.
const sweepEvery = 10 * time.Minute

// Options are the server's dependencies.
type Options struct {
	Words        *words.List
	Scorer       scoring.Scorer
	Sessions     store.Store
	Daily        *daily.Store
	DailySalt    string
	Tokens       *Tokens
	ClientOrigin string
	Now          func() time.Time
}

// Server bundles router, session store and daily board.
type Server struct {
	r        *chi.Mux
	words    *words.List
	scorer   scoring.Scorer
	sessions store.Store
	tokens   *Tokens
	now      func() time.Time
	daily    *dailyServer
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) (*Server, error) {
	if o.Words == nil {
		return nil, ErrNoWords
	}
	if o.Scorer == nil {
		o.Scorer = scoring.Simple
	}
	if o.Sessions == nil {
		o.Sessions = store.NewMemoryStore()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Tokens == nil {
		o.Tokens = NewTokens("dev_secret_change_me", 24*time.Hour)
	}
	s := &Server{
		r:        chi.NewRouter(),
		words:    o.Words,
		scorer:   o.Scorer,
		sessions: o.Sessions,
		tokens:   o.Tokens,
		now:      o.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one debug line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(o.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-go",
			"endpoints": []string{
				"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}",
				"POST /daily/new", "POST /daily/guess", "GET /daily/leaderboard",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"answers":  s.words.Len(),
			"source":   s.words.Source(),
			"sessions": s.sessions.Len(),
		})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.With(s.requireGameToken).Post("/game/guess", s.handleGuess)
	s.r.With(s.requireGameToken).Get("/game/{id}", s.handleGetGame)

	// --- daily ---
	if o.Daily != nil {
		s.daily = s.mountDaily(s.r, o.Daily, o.DailySalt)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		t := time.NewTicker(sweepEvery)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				s.sweep(gctx)
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("http server shutting down")
		return hs.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// sweep drops sessions whose tokens can no longer be valid.
func (s *Server) sweep(ctx context.Context) int {
	n, err := s.sessions.Sweep(ctx, s.now().UTC().Add(-s.tokens.ttl))
	if err != nil {
		log.Warn().Err(err).Msg("sweep sessions")
		return 0
	}
	if n > 0 {
		log.Debug().Int("dropped", n).Int("left", s.sessions.Len()).Msg("sessions swept")
	}
	return n
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

// requestLogger logs method, path, status and latency at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("reqId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeWordError maps a word parse failure to 400 with its kind.
func writeWordError(w http.ResponseWriter, err error) {
	code := word.Kind(err)
	if code == "" {
		code = "invalid_word"
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": code, "reason": word.Reason(err)})
}

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}

type newGameRes struct {
	GameID    string      `json:"gameId"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Remaining int         `json:"remaining"`
	State     game.Status `json:"state"`
}

// handleNewGame starts a game with a random answer, or the given one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var secret word.Word
	if answer := strings.TrimSpace(req.Answer); answer != "" {
		w2, err := word.Parse(answer)
		if err != nil {
			writeWordError(w, err)
			return
		}
		secret = w2
	} else {
		secret = s.words.Random()
	}

	sess, err := s.sessions.Create(r.Context(), store.Session{
		Mode:      store.ModeNormal,
		Game:      game.New(secret, game.WithScorer(s.scorer)),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Msg("create game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.tokens.Issue(sess.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", sess.ID).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Debug().Str("gameId", sess.ID).Bool("fixed", req.Answer != "").Msg("game created")

	writeJSON(w, http.StatusOK, newGameRes{
		GameID:    sess.ID,
		Token:     tok,
		ExpiresAt: exp,
		Remaining: sess.Game.RemainingGuesses(),
		State:     sess.Game.Status(),
	})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Marks     scoring.WordScore   `json:"marks"`
	Glyphs    string              `json:"glyphs"`
	State     game.Status         `json:"state"`
	Remaining int                 `json:"remaining"`
	Knowledge knowledge.Knowledge `json:"knowledge"`
	Answer    string              `json:"answer,omitempty"`
}

// handleGuess applies one guess to the caller's game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if !authorizedFor(r, req.GameID) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	guess, err := word.Parse(strings.TrimSpace(req.Guess))
	if err != nil {
		writeWordError(w, err)
		return
	}

	sess, err := s.sessions.Update(r.Context(), req.GameID, playGuess(guess))
	if !s.writeUpdateError(w, req.GameID, err) {
		return
	}
	writeJSON(w, http.StatusOK, newGuessRes(sess.Game))
}

// playGuess is the store.Update step for a single guess.
func playGuess(guess word.Word) func(store.Session) (store.Session, error) {
	return func(cur store.Session) (store.Session, error) {
		g, err := cur.Game.Play(guess)
		if err != nil {
			return cur, err
		}
		cur.Game = g
		return cur, nil
	}
}

// writeUpdateError writes the response for a failed session update and
// reports whether the handler should continue.
func (s *Server) writeUpdateError(w http.ResponseWriter, gameID string, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "game_finished")
	default:
		log.Error().Err(err).Str("gameId", gameID).Msg("update game")
		writeError(w, http.StatusInternalServerError, "save_failed")
	}
	return false
}

func newGuessRes(g game.Game) guessRes {
	last, _ := g.LastScore()
	res := guessRes{
		Marks:     last,
		Glyphs:    scoring.DefaultGlyphs.Render(last),
		State:     g.Status(),
		Remaining: g.RemainingGuesses(),
		Knowledge: g.Knowledge(),
	}
	if g.Status().Terminal() {
		res.Answer = g.Secret().String()
	}
	return res
}

type snapshotRes struct {
	GameID    string              `json:"gameId"`
	Mode      store.Mode          `json:"mode"`
	Turns     []game.Turn         `json:"turns"`
	Knowledge knowledge.Knowledge `json:"knowledge"`
	State     game.Status         `json:"state"`
	Remaining int                 `json:"remaining"`
	Answer    string              `json:"answer,omitempty"`
}

// handleGetGame returns the full state of the caller's game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !authorizedFor(r, id) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sess, err := s.sessions.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	g := sess.Game
	res := snapshotRes{
		GameID:    sess.ID,
		Mode:      sess.Mode,
		Turns:     g.Turns(),
		Knowledge: g.Knowledge(),
		State:     g.Status(),
		Remaining: g.RemainingGuesses(),
	}
	if g.Status().Terminal() {
		res.Answer = g.Secret().String()
	}
	writeJSON(w, http.StatusOK, res)
}
