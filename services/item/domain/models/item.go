package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Finder is the contact who reported an item. It has no identity outside its Item.
type Finder struct {
	Name  string
	Email string
	Phone string // optional
}

// Report carries the details a finder submits. NewItem turns it into an Item.
type Report struct {
	Name        string
	Category    Category
	Location    Location
	DateFound   Date
	Description string
	Images      []string // inline data URLs, in upload order
	Finder      Finder
}

// Item is a reported found object. Items are never updated after creation,
// so collections may share *Item references freely.
type Item struct {
	ID          string
	Name        string
	Category    Category
	Location    Location
	DateFound   Date
	Description string
	Images      []string
	Finder      Finder
	CreatedAt   time.Time
}

// NewItem constructs an Item from a report with a generated ID.
// reportedAt becomes CreatedAt, normalized to UTC.
func NewItem(r Report, reportedAt time.Time) (*Item, error) {
	return &Item{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Category:    r.Category,
		Location:    r.Location,
		DateFound:   r.DateFound,
		Description: r.Description,
		Images:      slices.Clone(r.Images),
		Finder:      r.Finder,
		CreatedAt:   reportedAt.UTC(),
	}, nil
}
