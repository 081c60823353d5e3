package models

import (
	"fmt"
	"slices"
)

// Category is one of the fixed item categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryAccessories Category = "Accessories"
	CategoryBooks       Category = "Books"
	CategoryDocuments   Category = "Documents"
	CategoryKeys        Category = "Keys"
	CategoryOther       Category = "Other"
)

var categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryAccessories,
	CategoryBooks,
	CategoryDocuments,
	CategoryKeys,
	CategoryOther,
}

// Categories returns the closed category list in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// ParseCategory returns the Category named s. Matching is exact.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is a member of the category list.
func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

func (c Category) String() string {
	return string(c)
}
