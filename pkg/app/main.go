package app

import (
	"context"

	"github.com/campuslost/lostfound/pkg/config"
	"github.com/campuslost/lostfound/pkg/logger"
)

// SlotStorage is the raw key-value port every storage backend implements.
// It mirrors the item domain's repositories.SlotStorage so pkg stays free of
// service imports.
type SlotStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Application holds shared infrastructure dependencies for all services.
// Pass to all service Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item reported", "item_id", id)
//	app.Logger.WarnContext(ctx, "search served from empty collection", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config *config.Config
	Logger logger.Logger
	// Slots is the backend selected by STORAGE_BACKEND.
	Slots SlotStorage
}
