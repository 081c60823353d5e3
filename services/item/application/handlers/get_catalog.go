package handlers

import (
	"net/http"

	"github.com/campuslost/lostfound/pkg/httpx"
	appsvcs "github.com/campuslost/lostfound/services/item/application/services"
)

// CatalogResponse lists the values accepted for category and location.
type CatalogResponse struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
} // @name CatalogResponse

// GetCatalogHandler handles GET /catalog requests.
type GetCatalogHandler struct {
	svc *appsvcs.Services
}

// NewGetCatalogHandler returns a GetCatalogHandler backed by the given services.
func NewGetCatalogHandler(svc *appsvcs.Services) *GetCatalogHandler {
	return &GetCatalogHandler{svc: svc}
}

// Execute returns the report form vocabulary.
//
//	@Summary	Item catalog
//	@Tags		items
//	@Produce	json
//	@Success	200	{object}	CatalogResponse
//	@Router		/catalog [get]
func (h *GetCatalogHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	c := h.svc.Item.Catalog()
	resp := CatalogResponse{
		Categories: make([]string, len(c.Categories)),
		Locations:  make([]string, len(c.Locations)),
	}
	for i, v := range c.Categories {
		resp.Categories[i] = v.String()
	}
	for i, v := range c.Locations {
		resp.Locations[i] = v.String()
	}
	httpx.JSON(w, http.StatusOK, resp)
}
