package main

import (
	"context"
	"fmt"

	itemmigrations "github.com/campuslost/lostfound/migrations/item"
	"github.com/campuslost/lostfound/pkg/app"
	"github.com/campuslost/lostfound/pkg/cache"
	"github.com/campuslost/lostfound/pkg/config"
	"github.com/campuslost/lostfound/pkg/database"
	"github.com/campuslost/lostfound/pkg/httpx"
	"github.com/campuslost/lostfound/pkg/logger"
	"github.com/campuslost/lostfound/pkg/migrator"
	"github.com/campuslost/lostfound/pkg/objectstore"
	"github.com/campuslost/lostfound/services/item/infrastructure/persistence/memory"
	"github.com/campuslost/lostfound/services/item/infrastructure/persistence/postgres"
)

// slotBackend is a slot storage that can also report its own health.
type slotBackend interface {
	app.SlotStorage
	httpx.HealthChecker
}

// openStorage connects the backend named by cfg.StorageBackend. The returned
// close func releases its connections and is never nil.
func openStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (slotBackend, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Warn("using in-memory storage, reports are lost on restart")
		return memory.NewSlotStorage(), func() {}, nil

	case config.BackendRedis:
		client, err := cache.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("redis connected")
		return cache.NewSlotStorage(client), func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		log.Info("database pool connected")
		if cfg.MigrateOnStart {
			if err := migrator.Up(ctx, pool.DB(), itemmigrations.FS, log); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return postgres.NewSlotRepository(pool), pool.Close, nil

	case config.BackendMinio:
		client, err := objectstore.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect object store: %w", err)
		}
		log.Info("object store connected", "bucket", cfg.MinioBucket)
		return client, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
