// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/campuslost/lostfound/services/item/domain/models"
)

// Report constraints, matching what the report form has always enforced.
const (
	MinNameLength        = 2
	MaxNameLength        = 120
	MinDescriptionLength = 10
	MinFinderNameLength  = 2
	MaxImages            = 5
)

// ValidateName enforces business rules for an item name:
//   - at least MinNameLength and at most MaxNameLength characters
//   - no leading or trailing whitespace
//   - no control characters (Unicode category Cc)
func ValidateName(name string) error {
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	n := utf8.RuneCountInString(name)
	if n < MinNameLength {
		return fmt.Errorf("item name must be at least %d characters", MinNameLength)
	}
	if n > MaxNameLength {
		return fmt.Errorf("item name must not exceed %d characters", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	return nil
}

// ValidateFinder checks the embedded contact record.
func ValidateFinder(f models.Finder) error {
	if utf8.RuneCountInString(strings.TrimSpace(f.Name)) < MinFinderNameLength {
		return fmt.Errorf("finder name must be at least %d characters", MinFinderNameLength)
	}
	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != f.Email {
		return fmt.Errorf("finder email %q is not a valid address", f.Email)
	}
	return nil
}

// ValidateImages requires 1..MaxImages inline image payloads.
func ValidateImages(images []string) error {
	if len(images) == 0 {
		return fmt.Errorf("at least one image is required")
	}
	if len(images) > MaxImages {
		return fmt.Errorf("at most %d images are allowed", MaxImages)
	}
	for i, img := range images {
		if !IsImageDataURL(img) {
			return fmt.Errorf("image %d is not an inline image data URL", i+1)
		}
	}
	return nil
}

// IsImageDataURL reports whether s looks like "data:image/<type>;base64,<payload>".
// The payload itself is opaque to the domain.
func IsImageDataURL(s string) bool {
	rest, ok := strings.CutPrefix(s, "data:image/")
	if !ok {
		return false
	}
	mediaType, payload, ok := strings.Cut(rest, ";base64,")
	return ok && mediaType != "" && payload != ""
}

// ValidateItemForCreation performs cross-field validation on a fully-constructed
// Item before it is stored. today is the reporter's current calendar date;
// an item cannot have been found after it.
func ValidateItemForCreation(item *models.Item, today models.Date) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.ID == "" {
		return fmt.Errorf("id must be set")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if !item.Category.Valid() {
		return fmt.Errorf("unknown category %q", item.Category)
	}

	if !item.Location.Valid() {
		return fmt.Errorf("unknown location %q", item.Location)
	}

	if item.DateFound.IsZero() {
		return fmt.Errorf("date found must be set")
	}
	if item.DateFound.After(today) {
		return fmt.Errorf("date found %s is in the future", item.DateFound)
	}

	if utf8.RuneCountInString(strings.TrimSpace(item.Description)) < MinDescriptionLength {
		return fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	}

	if err := ValidateFinder(item.Finder); err != nil {
		return fmt.Errorf("invalid finder: %w", err)
	}

	if err := ValidateImages(item.Images); err != nil {
		return fmt.Errorf("invalid images: %w", err)
	}

	if item.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	return nil
}
