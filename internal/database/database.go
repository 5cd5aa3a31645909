package database

import (
	"context"
	"fmt"

	"exam-admin/internal/config"
	"exam-admin/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DriverName is the database/sql driver used for PostgreSQL.
const DriverName = "pgx"

// NewSQLXPostgresDB opens the connection pool and verifies it with a ping.
func NewSQLXPostgresDB(ctx context.Context, dsn string, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Get().Info("Successfully connected to database",
		zap.Int("max_open_conns", cfg.MaxOpenConns))
	return db, nil
}
