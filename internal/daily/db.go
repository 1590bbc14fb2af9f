// internal/daily/db.go
//
// Database helpers for the daily results board.
// Responsibilities:
//   - Opening an in-process SQLite database.
//   - Applying the embedded schema in a single transaction.
//
// The database is always in memory and lives as long as the *sql.DB, so
// results never outlive the server process.

package daily

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schema string

// memoryDSN is a private in-memory database. A single pooled connection keeps
// it alive and avoids shared-cache table locking.
const memoryDSN = "file::memory:?_busy_timeout=5000"

// OpenDB opens the in-memory database and applies the schema.
func OpenDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// migrate applies the embedded schema inside a dedicated transaction.
func migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	log.Debug().Msg("daily schema applied")
	return nil
}
