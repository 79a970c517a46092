package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements are applied in order on every start; each one is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              UUID PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		first_name      TEXT NOT NULL DEFAULT '',
		last_name       TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		city            TEXT NOT NULL DEFAULT '',
		country         TEXT NOT NULL DEFAULT '',
		additional_info TEXT NOT NULL DEFAULT '',
		password_hash   TEXT NOT NULL,
		token_hash      TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id          UUID PRIMARY KEY,
		user_id     UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		place       TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		start_date  DATE NOT NULL,
		end_date    DATE NOT NULL,
		cover_photo_url TEXT NOT NULL DEFAULT '',
		cover_photo_id  TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (start_date <= end_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_user_created ON trips(user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS stops (
		id         UUID PRIMARY KEY,
		trip_id    UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		city       TEXT NOT NULL,
		country    TEXT NOT NULL DEFAULT '',
		start_date DATE NOT NULL,
		end_date   DATE NOT NULL,
		sequence   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stops_trip_sequence ON stops(trip_id, sequence)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id          UUID PRIMARY KEY,
		stop_id     UUID NOT NULL REFERENCES stops(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		time        TEXT NOT NULL DEFAULT '',
		cost        DOUBLE PRECISION NOT NULL DEFAULT 0,
		position    INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_stop_position ON activities(stop_id, position)`,
}

// EnsureSchema creates the tables and indexes used by the repositories.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
