package handlers

import (
	"time"

	"github.com/campuslost/lostfound/services/item/domain/models"
)

// FinderDTO carries the finder's contact details.
type FinderDTO struct {
	Name  string `json:"name"            validate:"required,min=2,max=120" example:"Sam Rivera"`
	Email string `json:"email"           validate:"required,email,max=254" example:"sam@campus.edu"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=40"       example:"555-0101"`
} // @name Finder

// ItemResponse is the public shape of a reported item.
type ItemResponse struct {
	ID          string    `json:"id"          example:"0b6f4f0c-1f8e-4c55-9f0a-2b8f3f1c9d11"`
	Name        string    `json:"name"        example:"Black Wallet"`
	Category    string    `json:"category"    example:"Accessories"`
	Location    string    `json:"location"    example:"Cafeteria"`
	DateFound   string    `json:"date_found"  example:"2024-03-09"`
	Description string    `json:"description" example:"brown leather, student card inside"`
	Images      []string  `json:"images"`
	Finder      FinderDTO `json:"finder"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-03-10T09:00:00Z"`
} // @name Item

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when a request fails field validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category.String(),
		Location:    item.Location.String(),
		DateFound:   item.DateFound.String(),
		Description: item.Description,
		Images:      item.Images,
		Finder: FinderDTO{
			Name:  item.Finder.Name,
			Email: item.Finder.Email,
			Phone: item.Finder.Phone,
		},
		CreatedAt: item.CreatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}
