package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgStore is the postgres backend: one row per key in kv_store
// (see db/ and cmd/migrate).
type pgStore struct {
	db *pgxpool.Pool
}

// kvRow maps to the kv_store table.
type kvRow struct {
	Key       string     `db:"key"`
	Value     string     `db:"value"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches);
// pgx.ErrNoRows is expected for absent keys and is not logged.
func queryOne[T any](pool *pgxpool.Pool, ctx context.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// newPGStore creates a connection pool. We use a pool (not a single conn)
// because hosted postgres providers close idle connections.
func newPGStore(ctx context.Context, dbURL string) (*pgStore, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// migrations alter kv_store.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Printf("[newPGStore] DB pool ready")
	return &pgStore{db: pool}, nil
}

func (s *pgStore) Close() {
	s.db.Close()
}

func (s *pgStore) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := queryOne[kvRow](s.db, ctx,
		"SELECT key, value, updated_at FROM kv_store WHERE key = @key",
		pgx.NamedArgs{"key": key})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (s *pgStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES (@key, @value)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		pgx.NamedArgs{"key": key, "value": value})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *pgStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx,
		"DELETE FROM kv_store WHERE key = @key",
		pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
