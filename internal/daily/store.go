package daily

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoResult is returned when a player has no recorded result for a date.
var ErrNoResult = errors.New("daily: no result")

// createdLayout matches the schema's strftime default for created_at.
const createdLayout = "2006-01-02T15:04:05.000Z"

// Result is one player's winning attempt at a daily challenge.
type Result struct {
	UserID    string    `json:"userId"`
	Date      string    `json:"date"` // "YYYY-MM-DD", UTC
	WordIndex int       `json:"wordIndex"`
	Guesses   int       `json:"guesses"`
	ElapsedMs int       `json:"elapsedMs"` // first request to winning guess
	CreatedAt time.Time `json:"createdAt"`
}

// Store reads and writes daily results.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Open creates a Store over a fresh in-memory database.
func Open(ctx context.Context) (*Store, error) {
	db, err := OpenDB(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// Close releases the database; all results are discarded.
func (s *Store) Close() error { return s.db.Close() }

// AlreadyPlayed reports whether userID has a recorded result for date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt); err != nil {
		return false, fmt.Errorf("daily: already played: %w", err)
	}
	return cnt > 0, nil
}

// InsertResult records r. A second result for the same user and date is
// ignored. A zero CreatedAt is stamped with the current time.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, word_index, guesses, elapsed_ms, created_at)
		 VALUES(?,?,?,?,?,?)`,
		r.UserID, r.Date, r.WordIndex, r.Guesses, r.ElapsedMs, r.CreatedAt.UTC().Format(createdLayout),
	)
	if err != nil {
		return fmt.Errorf("daily: insert result: %w", err)
	}
	return nil
}

// ResultFor returns userID's result for date, or ErrNoResult.
func (s *Store) ResultFor(ctx context.Context, userID, date string) (Result, error) {
	r := Result{UserID: userID, Date: date}
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT word_index, guesses, elapsed_ms, created_at
		 FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&r.WordIndex, &r.Guesses, &r.ElapsedMs, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNoResult
	} else if err != nil {
		return Result{}, fmt.Errorf("daily: result: %w", err)
	}
	if r.CreatedAt, err = time.Parse(createdLayout, created); err != nil {
		return Result{}, fmt.Errorf("daily: created_at %q: %w", created, err)
	}
	return r, nil
}

// Count returns how many players have a result for date.
func (s *Store) Count(ctx context.Context, date string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE date=?`, date,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("daily: count: %w", err)
	}
	return n, nil
}

// LBRow is one leaderboard entry. Rank starts at 1.
type LBRow struct {
	Rank      int       `json:"rank"`
	UserID    string    `json:"userId"`
	Guesses   int       `json:"guesses"`
	ElapsedMs int       `json:"elapsedMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// ranked orders one day's results: fastest, then fewest guesses, then earliest.
const ranked = `
	SELECT ROW_NUMBER() OVER (ORDER BY elapsed_ms ASC, guesses ASC, created_at ASC, rowid ASC) AS rnk,
	       user_id, guesses, elapsed_ms, created_at
	FROM daily_results
	WHERE date=?`

// Leaderboard returns the top results for date. A non-positive limit means 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT * FROM (`+ranked+`) ORDER BY rnk LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("daily: leaderboard: %w", err)
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Rank returns userID's leaderboard entry for date, or ErrNoResult.
func (s *Store) Rank(ctx context.Context, userID, date string) (LBRow, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT * FROM (`+ranked+`) WHERE user_id=?`, date, userID,
	)
	r, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return LBRow{}, ErrNoResult
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (LBRow, error) {
	var (
		r       LBRow
		created string
	)
	if err := sc.Scan(&r.Rank, &r.UserID, &r.Guesses, &r.ElapsedMs, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LBRow{}, err
		}
		return LBRow{}, fmt.Errorf("daily: scan row: %w", err)
	}
	t, err := time.Parse(createdLayout, created)
	if err != nil {
		return LBRow{}, fmt.Errorf("daily: created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return r, nil
}
