package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripcraft/config"
	"tripcraft/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// DB is the global Postgres handle.
var DB *sql.DB

// InitDB opens the Postgres pool, verifies it and applies the schema.
func InitDB() {
	logger := utils.GetLogger()

	db, err := Open(config.AppConfig.DatabaseURL, config.AppConfig.DBMaxOpenConns)
	if err != nil {
		logger.Fatal("failed to connect to Postgres", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	DB = db
	logger.Info("Connected to Postgres successfully")
}

// Open creates a pgx-backed *sql.DB and pings it.
func Open(dsn string, maxOpen int) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if maxOpen <= 0 {
		maxOpen = 10
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Close releases the global pool.
func Close() {
	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
