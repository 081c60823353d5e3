package main

import (
	"context"
	"log/slog"
	"os"

	itemmigrations "github.com/campuslost/lostfound/migrations/item"
	"github.com/campuslost/lostfound/pkg/config"
	"github.com/campuslost/lostfound/pkg/database"
	"github.com/campuslost/lostfound/pkg/logger"
	"github.com/campuslost/lostfound/pkg/migrator"
)

// Applies the item migrations to DATABASE_URL and exits. Only needed for the
// postgres backend when the API runs with MIGRATE_ON_START=false.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := migrator.Up(ctx, pool.DB(), itemmigrations.FS, log); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: deferred close is best-effort
	}
}
