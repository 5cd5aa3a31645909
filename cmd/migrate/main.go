package main

import (
	"context"
	"flag"
	"log"
	"time"

	"exam-admin/internal/config"
	"exam-admin/internal/database"
	"exam-admin/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of down steps, 0 reverts everything")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		l.Fatal("Invalid configuration", zap.Error(err))
	}
	dsn, err := cfg.GetDSN()
	if err != nil {
		l.Fatal("Invalid database configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := database.NewSQLXPostgresDB(ctx, dsn, cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch *direction {
	case "up":
		err = database.RunMigrations(db.DB)
	case "down":
		err = database.RollbackMigrations(db.DB, *steps)
	default:
		l.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}
	if err != nil {
		l.Fatal("Migration failed", zap.String("direction", *direction), zap.Error(err))
	}
	l.Info("Migration finished", zap.String("direction", *direction))
}
