package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/daily"
)

type dailyNewBody struct {
	GameID    string `json:"gameId"`
	Date      string `json:"date"`
	Played    bool   `json:"played"`
	Remaining int    `json:"remaining"`
}

func anonCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == anonCookieName {
			return c
		}
	}
	t.Fatal("no anon cookie set")
	return nil
}

func dailyGuess(t *testing.T, s *Server, ck *http.Cookie, gameID, w string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, s, call{
		method:  http.MethodPost,
		path:    "/daily/guess",
		body:    `{"gameId":"` + gameID + `","word":"` + w + `"}`,
		cookies: []*http.Cookie{ck},
	})
}

func TestDailyWinIsRecordedOnce(t *testing.T) {
	s := newTestServer(t)
	answer := daily.PuzzleFor(testNow, "test_salt", s.words).Answer.String()

	rec := do(t, s, call{method: http.MethodPost, path: "/daily/new"})
	require.Equal(t, http.StatusOK, rec.Code)
	ck := anonCookie(t, rec)
	first := decode[dailyNewBody](t, rec)
	assert.Equal(t, "2026-10-19", first.Date)
	assert.False(t, first.Played)
	assert.Equal(t, 6, first.Remaining)
	require.NotEmpty(t, first.GameID)

	// same player, same day → same game
	rec = do(t, s, call{method: http.MethodPost, path: "/daily/new", cookies: []*http.Cookie{ck}})
	assert.Equal(t, first.GameID, decode[dailyNewBody](t, rec).GameID)

	rec = dailyGuess(t, s, ck, first.GameID, answer)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[map[string]any](t, rec)
	assert.Equal(t, "won", res["state"])
	assert.EqualValues(t, 1, res["guesses"])
	assert.Equal(t, answer, res["answer"])
	assert.EqualValues(t, 1, res["rank"])

	rec = do(t, s, call{method: http.MethodPost, path: "/daily/new", cookies: []*http.Cookie{ck}})
	again := decode[dailyNewBody](t, rec)
	assert.True(t, again.Played)
	assert.Empty(t, again.GameID)

	rec = do(t, s, call{method: http.MethodGet, path: "/daily/leaderboard", cookies: []*http.Cookie{ck}})
	require.Equal(t, http.StatusOK, rec.Code)
	lb := decode[struct {
		Date    string        `json:"date"`
		Players int           `json:"players"`
		Top     []daily.LBRow `json:"top"`
		You     *daily.LBRow  `json:"you"`
	}](t, rec)
	assert.Equal(t, "2026-10-19", lb.Date)
	assert.Equal(t, 1, lb.Players)
	require.Len(t, lb.Top, 1)
	assert.Equal(t, ck.Value, lb.Top[0].UserID)
	assert.Equal(t, 1, lb.Top[0].Guesses)
	assert.Equal(t, 1, lb.Top[0].Rank)
	assert.True(t, lb.Top[0].CreatedAt.Equal(testNow))
	require.NotNil(t, lb.You)
	assert.Equal(t, 1, lb.You.Rank)

	// a stranger sees the board but no entry of their own
	rec = do(t, s, call{method: http.MethodGet, path: "/daily/leaderboard"})
	assert.NotContains(t, rec.Body.String(), `"you"`)
}

func TestDailyGuessNeedsSession(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, call{method: http.MethodPost, path: "/daily/new"})
	ck := anonCookie(t, rec)

	rec = dailyGuess(t, s, ck, "someone-elses-game", "CRANE")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"no_session"}`, rec.Body.String())
}

func TestDailyGuessInvalidWord(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, call{method: http.MethodPost, path: "/daily/new"})
	ck := anonCookie(t, rec)
	id := decode[dailyNewBody](t, rec).GameID

	rec = dailyGuess(t, s, ck, id, "toolong")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_length", decode[map[string]string](t, rec)["error"])
}

func TestDailyLeaderboardBadDate(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, call{method: http.MethodGet, path: "/daily/leaderboard?date=yesterday"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, call{method: http.MethodGet, path: "/daily/leaderboard?date=2020-01-01"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2020-01-01","players":0,"top":[]}`, rec.Body.String())
}

func TestDailyLossIsNotRecorded(t *testing.T) {
	s := newTestServer(t)
	answer := daily.PuzzleFor(testNow, "test_salt", s.words).Answer.String()
	wrong := "CRANE"
	if answer == wrong {
		wrong = "BROWN"
	}

	rec := do(t, s, call{method: http.MethodPost, path: "/daily/new"})
	ck := anonCookie(t, rec)
	id := decode[dailyNewBody](t, rec).GameID

	var res map[string]any
	for i := 0; i < 6; i++ {
		rec = dailyGuess(t, s, ck, id, wrong)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		res = decode[map[string]any](t, rec)
	}
	assert.Equal(t, "lost", res["state"])
	assert.EqualValues(t, 0, res["remaining"])
	assert.Equal(t, answer, res["answer"])

	// the finished game is handed back rather than a fresh one
	rec = do(t, s, call{method: http.MethodPost, path: "/daily/new", cookies: []*http.Cookie{ck}})
	again := decode[dailyNewBody](t, rec)
	assert.True(t, again.Played)
	assert.Equal(t, id, again.GameID)
	assert.Equal(t, 0, again.Remaining)

	rec = dailyGuess(t, s, ck, id, answer)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"game_finished"}`, rec.Body.String())

	rec = do(t, s, call{method: http.MethodGet, path: "/daily/leaderboard"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-10-19","players":0,"top":[]}`, rec.Body.String())
}

func TestDailyGuessOnAnotherPlayersSession(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, call{method: http.MethodPost, path: "/daily/new"})
	victim := decode[dailyNewBody](t, rec).GameID

	rec = do(t, s, call{method: http.MethodPost, path: "/daily/new"})
	ck := anonCookie(t, rec)
	// point the second player's mapping at the first player's game
	s.daily.mu.Lock()
	s.daily.sessions[dailyKey{userID: ck.Value, date: "2026-10-19"}] = victim
	s.daily.mu.Unlock()

	rec = dailyGuess(t, s, ck, victim, "CRANE")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())

	sess, err := s.sessions.Get(context.Background(), victim)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.Game.TurnCount())
}

func TestDailySweptSessionCountsAsPlayed(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, call{method: http.MethodPost, path: "/daily/new"})
	ck := anonCookie(t, rec)
	require.NotEmpty(t, decode[dailyNewBody](t, rec).GameID)

	s.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	require.Equal(t, 1, s.sweep(context.Background()))

	rec = do(t, s, call{method: http.MethodPost, path: "/daily/new", cookies: []*http.Cookie{ck}})
	again := decode[dailyNewBody](t, rec)
	assert.True(t, again.Played)
	assert.Empty(t, again.GameID)
}
