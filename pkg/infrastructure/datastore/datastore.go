package datastore

import (
	"context"
	"fmt"
	"time"
	"todo-app/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS todos (
	id          INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	name        TEXT    NOT NULL,
	is_complete BOOLEAN NOT NULL DEFAULT FALSE
)`

// NewDSN returns the configured Postgres connection string.
func NewDSN() string {
	return config.C.Database.URL
}

// NewClient creates a pgx pool from the configured DSN and makes sure the todos table exists.
func NewClient(ctx context.Context) (*pgxpool.Pool, error) {
	return NewClientWithDSN(ctx, NewDSN())
}

// NewClientWithDSN creates a pgx pool for dsn. Pool limits come from config.
func NewClientWithDSN(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool config: %w", err)
	}
	poolConfig.MaxConns = config.C.Database.MaxConns
	if poolConfig.MaxConns <= 0 {
		poolConfig.MaxConns = 1
	}
	poolConfig.MinConns = config.C.Database.MinConns
	if m := config.C.Database.MaxConnLifetimeMinutes; m > 0 {
		poolConfig.MaxConnLifetime = time.Minute * time.Duration(m)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// EnsureSchema creates the todos table if it doesn't exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}
	return nil
}
