package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/campuslost/lostfound/pkg/app"
	"github.com/campuslost/lostfound/services/item/application/handlers"
	appsvcs "github.com/campuslost/lostfound/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
		r.Post("/images", handlers.NewPostImageHandler(svcs).Execute)
		r.Get("/catalog", handlers.NewGetCatalogHandler(svcs).Execute)
	})
}
