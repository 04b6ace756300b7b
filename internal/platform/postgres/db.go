package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/questboard/questboard-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver
)

// Open creates a database connection pool from the given configuration and
// verifies connectivity with a bounded ping. The caller owns the returned
// pool and is responsible for closing it.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Second)

	// sql.Open does not connect; ping to fail fast on a bad URL.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
