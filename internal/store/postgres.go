package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const kvTable = "kv_store"

// PostgresStore is a Store backed by a single key-value table in
// PostgreSQL. Values are stored as jsonb since every blob in the system
// is JSON.
type PostgresStore struct {
	pool    *pgxpool.Pool
	builder sq.StatementBuilderType
}

// NewPostgresStore creates a PostgresStore on top of an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:    pool,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get returns the value for key, or false if the key is absent.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := s.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.builder.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
