// Package slotstore keeps the whole Item collection in one named slot of a
// repositories.SlotStorage, rewriting it on every change.
package slotstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/campuslost/lostfound/pkg/logger"
	itemdomain "github.com/campuslost/lostfound/services/item/domain"
	"github.com/campuslost/lostfound/services/item/domain/models"
	"github.com/campuslost/lostfound/services/item/domain/repositories"
)

// Store implements repositories.ItemStore over a single slot.
//
// Add and DeleteByID are read-modify-write cycles. mu serializes them within
// this process only; two processes sharing a backend can still lose each
// other's writes.
type Store struct {
	slots repositories.SlotStorage
	key   string
	log   logger.Logger
	mu    sync.Mutex
}

var _ repositories.ItemStore = (*Store)(nil)

// NewStore returns a Store keeping its collection under key in slots.
func NewStore(slots repositories.SlotStorage, key string, log logger.Logger) *Store {
	return &Store{
		slots: slots,
		key:   key,
		log:   log.With("component", "item_store", "slot", key),
	}
}

// GetAll returns the stored collection in storage order. On any storage
// failure it returns an empty collection and a degraded Outcome.
func (s *Store) GetAll(ctx context.Context) ([]*models.Item, repositories.Outcome) {
	items, err := s.load(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "item store: read degraded to empty collection", "error", err)
		return []*models.Item{}, repositories.Outcome{Err: err}
	}
	return items, repositories.Outcome{}
}

// Add appends item to the collection. A corrupt collection is replaced by a
// collection holding only item; an unreachable slot drops the write.
func (s *Store) Add(ctx context.Context, item *models.Item) repositories.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	switch {
	case errors.Is(err, itemdomain.ErrCorruptCollection):
		s.log.WarnContext(ctx, "item store: overwriting corrupt collection", "error", err)
		items = nil
	case err != nil:
		s.log.ErrorContext(ctx, "item store: add dropped", "item_id", item.ID, "error", err)
		return repositories.Outcome{Err: err}
	}

	return s.write(ctx, append(items, item), "add", item.ID)
}

// DeleteByID removes every item whose id equals id. A corrupt collection
// holds no items, so nothing matches. Nothing is written when no item
// matches or the slot is unreachable.
func (s *Store) DeleteByID(ctx context.Context, id string) repositories.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	switch {
	case errors.Is(err, itemdomain.ErrCorruptCollection):
		s.log.WarnContext(ctx, "item store: delete on corrupt collection matched nothing", "item_id", id, "error", err)
		return repositories.Outcome{}
	case err != nil:
		s.log.ErrorContext(ctx, "item store: delete dropped", "item_id", id, "error", err)
		return repositories.Outcome{Err: err}
	}

	before := len(items)
	kept := slices.DeleteFunc(items, func(item *models.Item) bool { return item.ID == id })
	if len(kept) == before {
		return repositories.Outcome{}
	}
	return s.write(ctx, kept, "delete", id)
}

// GetByID scans the collection for id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Item, bool) {
	items, _ := s.GetAll(ctx)
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

func (s *Store) load(ctx context.Context) ([]*models.Item, error) {
	raw, found, err := s.slots.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: read slot: %w", itemdomain.ErrStorageUnavailable, err)
	}
	if !found {
		return []*models.Item{}, nil
	}
	items, err := decodeCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrCorruptCollection, err)
	}
	return items, nil
}

func (s *Store) write(ctx context.Context, items []*models.Item, op, itemID string) repositories.Outcome {
	raw, err := encodeCollection(items)
	if err != nil {
		err = fmt.Errorf("%w: %w", itemdomain.ErrStorageUnavailable, err)
		s.log.ErrorContext(ctx, "item store: write dropped", "op", op, "item_id", itemID, "error", err)
		return repositories.Outcome{Err: err}
	}
	if err := s.slots.Set(ctx, s.key, raw); err != nil {
		err = fmt.Errorf("%w: write slot: %w", itemdomain.ErrStorageUnavailable, err)
		s.log.ErrorContext(ctx, "item store: write dropped", "op", op, "item_id", itemID, "error", err)
		return repositories.Outcome{Err: err}
	}
	s.log.DebugContext(ctx, "item store: collection written", "op", op, "item_id", itemID, "items", len(items))
	return repositories.Outcome{}
}
