// internal/store/memory.go
//
// In-memory store for game sessions served over HTTP.
//
// Characteristics:
//   - Sessions are keyed by a UUID assigned on Create.
//   - A game.Game is a value, so the store hands out copies; callers change
//     a session only through Update, which runs under the write lock so
//     guesses on the same session are applied one at a time.
//   - Sessions older than the token lifetime are swept by the server.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Mode distinguishes free play from the daily challenge.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeDaily  Mode = "daily"
)

// Session is one game plus its bookkeeping.
type Session struct {
	ID        string
	Mode      Mode
	Owner     string // anon player id; empty for normal games
	Game      game.Game
	CreatedAt time.Time
}

// Store defines the persistence interface for game sessions.
type Store interface {
	// Create assigns an ID to s and stores it.
	Create(ctx context.Context, s Session) (Session, error)

	// Get returns a copy of the session, or ErrNotFound.
	Get(ctx context.Context, id string) (Session, error)

	// Update replaces the session with fn's result. If fn fails nothing is stored.
	Update(ctx context.Context, id string, fn func(Session) (Session, error)) (Session, error)

	// Sweep removes sessions created before the cutoff and reports how many
	// were dropped.
	Sweep(ctx context.Context, before time.Time) (int, error)

	// Len reports the number of stored sessions.
	Len() int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]Session)}
}

func (m *memory) Create(ctx context.Context, s Session) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	s.ID = uuid.NewString()
	if s.Mode == "" {
		s.Mode = ModeNormal
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memory) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(Session) (Session, error)) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	next.ID = cur.ID
	m.sessions[id] = next
	return next, nil
}

func (m *memory) Sweep(ctx context.Context, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.CreatedAt.Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
