package history

import (
	"database/sql"
	"fmt"
)

// DefaultLimit is the number of entries List returns when asked for none.
const DefaultLimit = 20

// Repository stores and reads log entries.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record appends an entry and returns its ID.
func (r *Repository) Record(e Entry) (int64, error) {
	mode := e.Mode
	if mode == "" {
		mode = "substring"
	}
	res, err := r.db.Exec(`INSERT INTO queries (raw, normalized, outcome, usage, mode, data_digest, created_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))`,
		e.Raw, e.Normalized, e.Outcome, e.Usage, mode, e.DataDigest)
	if err != nil {
		return 0, fmt.Errorf("insert query: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit entries, newest first. A limit of zero or less
// means DefaultLimit.
func (r *Repository) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := r.db.Query(`SELECT id, raw, normalized, outcome, usage, mode, data_digest, created_at
		FROM queries ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Raw, &e.Normalized, &e.Outcome, &e.Usage, &e.Mode, &e.DataDigest, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes every entry and returns how many were removed.
func (r *Repository) Clear() (int64, error) {
	res, err := r.db.Exec("DELETE FROM queries")
	if err != nil {
		return 0, fmt.Errorf("clear queries: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the underlying DB connection used by the Repository.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
