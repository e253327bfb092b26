package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecordStore = (*RecordRepo)(nil)

// RecordRepo is the SQLite implementation of the RecordStore port interface.
type RecordRepo struct {
	db *DB
}

// NewRecordRepo creates a new RecordRepo backed by the given DB.
func NewRecordRepo(db *DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// Get retrieves the value stored under key. Returns (nil, nil) if no record
// exists.
func (r *RecordRepo) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM records WHERE key = ?`

	var value []byte
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", key, err)
	}

	return value, nil
}

// Put inserts or replaces the value stored under key.
func (r *RecordRepo) Put(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO records (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if value == nil {
		value = []byte{}
	}

	if _, err := r.db.Writer.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("put record %q: %w", key, err)
	}

	return nil
}

// Delete removes the record stored under key. Idempotent.
func (r *RecordRepo) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM records WHERE key = ?`

	if _, err := r.db.Writer.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}

	return nil
}
