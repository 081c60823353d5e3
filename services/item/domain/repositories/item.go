package repositories

import (
	"context"

	"github.com/campuslost/lostfound/services/item/domain/models"
)

// SlotStorage is the persistence port behind the item store: a key-value
// space holding raw strings. Implementations exist for memory, Redis,
// PostgreSQL and MinIO.
type SlotStorage interface {
	// Get returns the value stored under key. found is false when the slot
	// has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// Outcome reports what happened at the storage boundary. Item store
// operations never fail; a read or write that could not reach storage is
// absorbed and described here instead.
type Outcome struct {
	// Err is nil when the operation reached storage. Otherwise it wraps
	// domain.ErrStorageUnavailable or domain.ErrCorruptCollection.
	Err error
}

// Degraded reports whether the operation fell back to its safe default.
func (o Outcome) Degraded() bool {
	return o.Err != nil
}

// ItemStore is the persistence interface for the Item collection.
// The domain layer owns this interface; infrastructure implements it.
type ItemStore interface {
	// GetAll returns every item in storage order. An absent, empty or corrupt
	// slot yields an empty collection.
	GetAll(ctx context.Context) ([]*models.Item, Outcome)

	// Add appends item and rewrites the collection. Ids are not checked for uniqueness.
	Add(ctx context.Context, item *models.Item) Outcome

	// DeleteByID removes the item with the given id and rewrites the
	// collection. Deleting an unknown id is a no-op.
	DeleteByID(ctx context.Context, id string) Outcome

	// GetByID returns the first item with the given id.
	GetByID(ctx context.Context, id string) (*models.Item, bool)
}
