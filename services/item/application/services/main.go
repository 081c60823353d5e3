package services

import (
	"github.com/campuslost/lostfound/pkg/app"
	"github.com/campuslost/lostfound/services/item/infrastructure/persistence/slotstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	store := slotstore.NewStore(a.Slots, a.Config.ItemsSlotKey, a.Logger)
	return &Services{
		Item: NewItemService(store, a.Logger, a.Config.MaxImageBytes),
	}
}
