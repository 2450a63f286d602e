package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(ctx context.Context, cfg DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	var pool *pgxpool.Pool

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				logger.Info("Successfully connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		logger.Warn("Failed to connect to database, retrying",
			"attempt", i+1, "max_attempts", maxRetries, "retry_in", retryInterval, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Execer is the part of a pool AutoMigrate needs
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db Execer) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		user_type TEXT NOT NULL CHECK (user_type IN ('worker', 'customer')),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		profile_picture TEXT,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS workers (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		working_status TEXT NOT NULL CHECK (working_status IN ('employed', 'unemployed', 'student')),
		location TEXT NOT NULL,
		services JSONB NOT NULL,
		experience INTEGER NOT NULL CHECK (experience >= 0),
		availability JSONB NOT NULL,
		about TEXT,
		certifications JSONB NOT NULL DEFAULT '[]',
		rating INTEGER
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		worker_id BIGINT NOT NULL REFERENCES workers(id) ON DELETE CASCADE,
		service_type TEXT NOT NULL,
		date TIMESTAMP WITH TIME ZONE NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS session (
		sid TEXT PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expire TIMESTAMP WITH TIME ZONE NOT NULL
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_bookings_customer_id ON bookings(customer_id);
	CREATE INDEX IF NOT EXISTS idx_bookings_worker_id ON bookings(worker_id);
	CREATE INDEX IF NOT EXISTS idx_session_expire ON session(expire);
	`
	_, err := db.Exec(ctx, sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
