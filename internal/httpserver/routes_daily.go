// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's daily game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's daily game
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//     with the player count and the caller's own rank
//
// Players are identified by the anonymous cookie. Each player gets one game
// per UTC day; a win is recorded on the results board and blocks another
// attempt that day. The answer comes from daily.PuzzleFor (date + salt).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/knowledge"
	"github.com/robalobadob/wordle/internal/scoring"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/word"
)

const anonCookieName = "wordle_anon"

// errNotOwner rejects a daily guess on a session the player did not start.
var errNotOwner = errors.New("daily: session belongs to another player")

// dailyKey identifies one player's game on one day.
type dailyKey struct {
	userID string
	date   string
}

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	board    *daily.Store
	salt     string
	mu       sync.Mutex          // guards sessions
	sessions map[dailyKey]string // session IDs in srv.sessions
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router, board *daily.Store, salt string) *dailyServer {
	dd := &dailyServer{
		srv:      s,
		board:    board,
		salt:     salt,
		sessions: make(map[dailyKey]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
	return dd
}

// today returns the puzzle for the current UTC day.
func (d *dailyServer) today() daily.Puzzle {
	return daily.PuzzleFor(d.srv.now(), d.salt, d.srv.words)
}

// ensureAnonID returns an existing anon cookie or sets a new one.
func ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// -----------------------------------------------------------------------------
// /daily/new

type dailyNewRes struct {
	GameID    string `json:"gameId"`
	Date      string `json:"date"`
	Played    bool   `json:"played"`
	Remaining int    `json:"remaining"`
}

// handleNew creates or reuses today's session for the player.
//   - A recorded win for today → Played=true and no game.
//   - An existing session for today is returned as is.
//   - A session that was swept counts as played; the day's attempt is spent.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := ensureAnonID(w, r)
	p := d.today()

	played, err := d.board.AlreadyPlayed(r.Context(), uid, p.Date)
	if err != nil {
		log.Error().Err(err).Msg("daily already played")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: p.Date, Played: true})
		return
	}

	key := dailyKey{userID: uid, date: p.Date}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pruneLocked(p.Date)

	if id, ok := d.sessions[key]; ok {
		if sess, err := d.srv.sessions.Get(r.Context(), id); err == nil {
			writeJSON(w, http.StatusOK, dailyNewRes{
				GameID:    id,
				Date:      p.Date,
				Played:    sess.Game.Status().Terminal(),
				Remaining: sess.Game.RemainingGuesses(),
			})
			return
		} else if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, dailyNewRes{Date: p.Date, Played: true})
			return
		}
	}

	sess, err := d.srv.sessions.Create(r.Context(), store.Session{
		Mode:      store.ModeDaily,
		Owner:     uid,
		Game:      game.New(p.Answer, game.WithScorer(d.srv.scorer)),
		CreatedAt: d.srv.now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Msg("create daily game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	d.sessions[key] = sess.ID
	log.Debug().Str("gameId", sess.ID).Str("date", p.Date).Msg("daily game created")

	writeJSON(w, http.StatusOK, dailyNewRes{GameID: sess.ID, Date: p.Date, Remaining: sess.Game.RemainingGuesses()})
}

// pruneLocked forgets session mappings from earlier days.
func (d *dailyServer) pruneLocked(today string) {
	for k := range d.sessions {
		if k.date != today {
			delete(d.sessions, k)
		}
	}
}

// -----------------------------------------------------------------------------
// /daily/guess

type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

type dailyGuessRes struct {
	Marks     scoring.WordScore   `json:"marks"`
	Glyphs    string              `json:"glyphs"`
	State     game.Status         `json:"state"`
	Guesses   int                 `json:"guesses"`
	Remaining int                 `json:"remaining"`
	Knowledge knowledge.Knowledge `json:"knowledge"`
	Answer    string              `json:"answer,omitempty"`
	Rank      int                 `json:"rank,omitempty"` // set on a win
}

// handleGuess applies a guess to the player's session for today.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := ensureAnonID(w, r)

	var req dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess, err := word.Parse(strings.TrimSpace(req.Word))
	if err != nil {
		writeWordError(w, err)
		return
	}

	p := d.today()
	d.mu.Lock()
	id, ok := d.sessions[dailyKey{userID: uid, date: p.Date}]
	d.mu.Unlock()
	if !ok || id != req.GameID {
		writeError(w, http.StatusConflict, "no_session")
		return
	}

	sess, err := d.srv.sessions.Update(r.Context(), id, ownedBy(uid, playGuess(guess)))
	if errors.Is(err, errNotOwner) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if !d.srv.writeUpdateError(w, id, err) {
		return
	}

	g := sess.Game
	rank := 0
	if g.Status() == game.Won {
		rank = d.record(r, uid, p, sess)
	}

	last, _ := g.LastScore()
	res := dailyGuessRes{
		Marks:     last,
		Glyphs:    scoring.DefaultGlyphs.Render(last),
		State:     g.Status(),
		Guesses:   g.TurnCount(),
		Remaining: g.RemainingGuesses(),
		Knowledge: g.Knowledge(),
		Rank:      rank,
	}
	if g.Status().Terminal() {
		res.Answer = g.Secret().String()
	}
	writeJSON(w, http.StatusOK, res)
}

// record stores a win on the board and returns the player's rank for the
// day, or 0 if either step failed.
func (d *dailyServer) record(r *http.Request, uid string, p daily.Puzzle, sess store.Session) int {
	now := d.srv.now()
	err := d.board.InsertResult(r.Context(), daily.Result{
		UserID:    uid,
		Date:      p.Date,
		WordIndex: p.WordIndex,
		Guesses:   sess.Game.TurnCount(),
		ElapsedMs: int(now.Sub(sess.CreatedAt).Milliseconds()),
		CreatedAt: now,
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("record daily result")
		return 0
	}
	row, err := d.board.Rank(r.Context(), uid, p.Date)
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("daily rank")
		return 0
	}
	return row.Rank
}

// ownedBy runs step only on the player's own daily session.
func ownedBy(uid string, step func(store.Session) (store.Session, error)) func(store.Session) (store.Session, error) {
	return func(cur store.Session) (store.Session, error) {
		if cur.Mode != store.ModeDaily || cur.Owner != uid {
			return cur, errNotOwner
		}
		return step(cur)
	}
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

type lbRes struct {
	Date    string        `json:"date"`
	Players int           `json:"players"`
	Top     []daily.LBRow `json:"top"`
	You     *daily.LBRow  `json:"you,omitempty"`
}

// handleLeaderboard returns the leaderboard for the given date (default today),
// plus the caller's own entry when the anon cookie has one.
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.srv.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date")
		return
	}
	rows, err := d.board.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	players, err := d.board.Count(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Msg("daily player count")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	res := lbRes{Date: date, Players: players, Top: rows}

	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		me, err := d.board.Rank(r.Context(), c.Value, date)
		switch {
		case err == nil:
			res.You = &me
		case !errors.Is(err, daily.ErrNoResult):
			log.Warn().Err(err).Msg("daily rank")
		}
	}
	writeJSON(w, http.StatusOK, res)
}
