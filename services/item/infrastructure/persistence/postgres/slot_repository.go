package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campuslost/lostfound/pkg/database"
	"github.com/campuslost/lostfound/services/item/domain/repositories"
	"github.com/campuslost/lostfound/services/item/infrastructure/persistence/postgres/db"
)

// SlotRepository implements repositories.SlotStorage against the item.slots table.
type SlotRepository struct {
	db  *database.Database
	now func() time.Time
}

var _ repositories.SlotStorage = (*SlotRepository)(nil)

// NewSlotRepository returns a SlotRepository backed by the given connection pool.
func NewSlotRepository(database *database.Database) *SlotRepository {
	return &SlotRepository{db: database, now: time.Now}
}

// Get returns the slot payload, or found=false when no row exists for key.
func (r *SlotRepository) Get(ctx context.Context, key string) (string, bool, error) {
	q := db.New(r.db.DB())
	row, err := q.GetSlot(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query slot: %w", err)
	}
	return row.Payload, true, nil
}

// Set upserts the slot payload.
func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	q := db.New(r.db.DB())
	if err := q.UpsertSlot(ctx, db.UpsertSlotParams{
		Key:       key,
		Payload:   value,
		UpdatedAt: r.now().UTC(),
	}); err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

// Ping checks the underlying pool.
func (r *SlotRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
