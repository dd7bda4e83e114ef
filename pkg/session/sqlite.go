package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLitePersister keeps the open pending expense in a local sqlite file so a
// restarted client can resume it.
type SQLitePersister struct {
	db *sql.DB
}

var _ Persister = (*SQLitePersister)(nil)

// OpenSQLite opens (and creates if needed) the session database at path.
func OpenSQLite(path string) (*SQLitePersister, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	// One connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS payment_session (
		slot INTEGER PRIMARY KEY CHECK (slot = 1),
		pending_expense_id TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate session database: %w", err)
	}

	return &SQLitePersister{db: db}, nil
}

// Save stores id as the open pending expense, replacing any earlier one.
func (p *SQLitePersister) Save(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `INSERT INTO payment_session (slot, pending_expense_id, saved_at)
		VALUES (1, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET pending_expense_id = excluded.pending_expense_id, saved_at = excluded.saved_at`,
		id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored pending expense ID, or "" if there is none.
func (p *SQLitePersister) Load(ctx context.Context) (string, error) {
	var id string
	err := p.db.QueryRowContext(ctx, `SELECT pending_expense_id FROM payment_session WHERE slot = 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return id, nil
}

// Clear forgets the stored pending expense.
func (p *SQLitePersister) Clear(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM payment_session WHERE slot = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close closes the database.
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}
