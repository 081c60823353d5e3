package handlers

import (
	"fmt"
	"net/http"

	"github.com/campuslost/lostfound/pkg/errhttp"
	"github.com/campuslost/lostfound/pkg/httpx"
	pkgvalidator "github.com/campuslost/lostfound/pkg/validator"
	appsvcs "github.com/campuslost/lostfound/services/item/application/services"
	itemdomain "github.com/campuslost/lostfound/services/item/domain"
	"github.com/campuslost/lostfound/services/item/domain/models"
	domainsvcs "github.com/campuslost/lostfound/services/item/domain/services"
)

// ListItemsQuery holds the GET /items query parameters.
type ListItemsQuery struct {
	Search   string `json:"search"    validate:"max=200"`
	Category string `json:"category"  validate:"omitempty,item_category"`
	Location string `json:"location"  validate:"omitempty,campus_location"`
	DateFrom string `json:"date_from" validate:"omitempty,calendar_date"`
	DateTo   string `json:"date_to"   validate:"omitempty,calendar_date"`
}

// ListItemsResponse is the search result page.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count"           example:"2"`
	// FiltersApplied counts the active category, location and date filters.
	FiltersApplied int `json:"filters_applied" example:"1"`
} // @name ListItemsResponse

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute searches reported items, newest first.
//
//	@Summary		Search items
//	@Description	Filters the collection. search matches name or description case-insensitively; the other filters are exact. Date bounds are inclusive.
//	@Tags			items
//	@Produce		json
//	@Param			search		query		string	false	"Substring of name or description"
//	@Param			category	query		string	false	"Exact category"
//	@Param			location	query		string	false	"Exact location"
//	@Param			date_from	query		string	false	"Earliest date found (YYYY-MM-DD)"
//	@Param			date_to		query		string	false	"Latest date found (YYYY-MM-DD)"
//	@Success		200			{object}	ListItemsResponse
//	@Failure		422			{object}	ValidationErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := ListItemsQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Location: q.Get("location"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
	if err := pkgvalidator.Validate(&query); err != nil {
		pkgvalidator.WriteValidationError(w, err)
		return
	}

	filter, err := query.toFilter()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := h.svc.Item.Search(r.Context(), filter)
	httpx.JSON(w, http.StatusOK, ListItemsResponse{
		Items:          toItemResponses(items),
		Count:          len(items),
		FiltersApplied: filter.ActiveCount(),
	})
}

func (q ListItemsQuery) toFilter() (domainsvcs.Filter, error) {
	f := domainsvcs.Filter{
		Search:   q.Search,
		Category: models.Category(q.Category),
		Location: models.Location(q.Location),
	}
	if q.DateFrom != "" {
		d, err := models.ParseDate(q.DateFrom)
		if err != nil {
			return f, fmt.Errorf("%w: date_from: %w", itemdomain.ErrInvalidFilter, err)
		}
		f.DateFrom = d
	}
	if q.DateTo != "" {
		d, err := models.ParseDate(q.DateTo)
		if err != nil {
			return f, fmt.Errorf("%w: date_to: %w", itemdomain.ErrInvalidFilter, err)
		}
		f.DateTo = d
	}
	return f, nil
}
