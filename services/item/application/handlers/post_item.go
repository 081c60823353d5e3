package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/campuslost/lostfound/pkg/errhttp"
	"github.com/campuslost/lostfound/pkg/httpx"
	pkgvalidator "github.com/campuslost/lostfound/pkg/validator"
	appsvcs "github.com/campuslost/lostfound/services/item/application/services"
	itemdomain "github.com/campuslost/lostfound/services/item/domain"
	"github.com/campuslost/lostfound/services/item/domain/models"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name        string    `json:"name"        validate:"required,min=2,max=120"            example:"Black Wallet"`
	Category    string    `json:"category"    validate:"required,item_category"            example:"Accessories"`
	Location    string    `json:"location"    validate:"required,campus_location"          example:"Cafeteria"`
	DateFound   string    `json:"date_found"  validate:"required,calendar_date"            example:"2024-03-09"`
	Description string    `json:"description" validate:"required,min=10,max=2000"          example:"brown leather, student card inside"`
	Images      []string  `json:"images"      validate:"required,min=1,max=5,dive,image_data_url"`
	Finder      FinderDTO `json:"finder"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute reports a found item.
//
//	@Summary		Report found item
//	@Description	Stores a new found-item report. The server assigns id and created_at.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item report"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	report, err := req.toReport()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	item, err := h.svc.Item.Report(r.Context(), report)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

func (req *CreateItemRequest) toReport() (models.Report, error) {
	dateFound, err := models.ParseDate(req.DateFound)
	if err != nil {
		return models.Report{}, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}
	return models.Report{
		Name:        strings.TrimSpace(req.Name),
		Category:    models.Category(req.Category),
		Location:    models.Location(req.Location),
		DateFound:   dateFound,
		Description: strings.TrimSpace(req.Description),
		Images:      req.Images,
		Finder: models.Finder{
			Name:  strings.TrimSpace(req.Finder.Name),
			Email: strings.TrimSpace(req.Finder.Email),
			Phone: strings.TrimSpace(req.Finder.Phone),
		},
	}, nil
}
