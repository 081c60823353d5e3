package services

import (
	"slices"
	"strings"

	"github.com/campuslost/lostfound/services/item/domain/models"
)

// Filter narrows an item collection. Every zero-valued field means
// "no constraint"; a zero Filter matches everything.
type Filter struct {
	// Search is a case-insensitive substring matched against name OR description.
	Search   string
	Category models.Category // exact match
	Location models.Location // exact match
	DateFrom models.Date     // inclusive lower bound on DateFound
	DateTo   models.Date     // inclusive upper bound on DateFound
}

// ActiveCount is the number of narrowing filters in effect, not counting
// Search. The listing page shows it as a badge.
func (f Filter) ActiveCount() int {
	n := 0
	if f.Category != "" {
		n++
	}
	if f.Location != "" {
		n++
	}
	if !f.DateFrom.IsZero() {
		n++
	}
	if !f.DateTo.IsZero() {
		n++
	}
	return n
}

// Matches reports whether item passes every predicate of f.
func (f Filter) Matches(item *models.Item) bool {
	return f.matches(item, strings.ToLower(f.Search))
}

// matches takes the lowered search term so Query lowers it once per call.
func (f Filter) matches(item *models.Item, search string) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Location != "" && item.Location != f.Location {
		return false
	}
	if !f.DateFrom.IsZero() && item.DateFound.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && item.DateFound.After(f.DateTo) {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(item.Name), search) &&
		!strings.Contains(strings.ToLower(item.Description), search) {
		return false
	}
	return true
}

// Query returns the items that match f, newest report first. Items with equal
// CreatedAt keep their snapshot order, so identical inputs always produce the
// same ordering. The result is a new slice sharing the snapshot's *Item
// references; the snapshot itself is not modified.
func Query(snapshot []*models.Item, f Filter) []*models.Item {
	search := strings.ToLower(f.Search)

	out := make([]*models.Item, 0, len(snapshot))
	for _, item := range snapshot {
		if item != nil && f.matches(item, search) {
			out = append(out, item)
		}
	}

	slices.SortStableFunc(out, func(a, b *models.Item) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
