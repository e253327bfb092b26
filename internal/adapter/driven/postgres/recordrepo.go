// Package postgres implements the driven record store port on PostgreSQL
// through a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecordStore = (*RecordRepo)(nil)

// db is the subset of *pgxpool.Pool and pgx.Tx used by RecordRepo. Tests pass
// a transaction that is rolled back afterwards.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RecordRepo is the PostgreSQL implementation of the RecordStore port interface.
type RecordRepo struct {
	db db
}

// NewRecordRepo creates a RecordRepo. Pass a *pgxpool.Pool in production.
func NewRecordRepo(db db) *RecordRepo {
	return &RecordRepo{db: db}
}

// NewPool opens a pgx pool for dsn and verifies the server is reachable.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Get retrieves the value stored under key. Returns (nil, nil) if no record
// exists.
func (r *RecordRepo) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM records WHERE key = @key`

	var value []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres.RecordRepo.Get %q: %w", key, err)
	}

	return value, nil
}

// Put inserts or replaces the value stored under key.
func (r *RecordRepo) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO records (key, value, updated_at)
		VALUES (@key, @value, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`

	if value == nil {
		value = []byte{}
	}

	args := pgx.NamedArgs{"key": key, "value": value}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("postgres.RecordRepo.Put %q: %w", key, err)
	}

	return nil
}

// Delete removes the record stored under key. Idempotent.
func (r *RecordRepo) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM records WHERE key = @key`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("postgres.RecordRepo.Delete %q: %w", key, err)
	}

	return nil
}
