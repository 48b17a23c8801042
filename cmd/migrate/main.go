package main

import (
	"context"
	"os"
	"time"

	"roadmap-backend/internal/shared/config"
	"roadmap-backend/internal/shared/storage/db"
	"roadmap-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		telemetry.Error("DATABASE_URL is required", nil)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultMigrateOptions())
	if err != nil {
		telemetry.Error("connect failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		telemetry.Error("migrations failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	telemetry.Info("migrations applied", nil)
}
