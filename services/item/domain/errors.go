package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItem indicates a report violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidFilter indicates a search filter could not be interpreted.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrStorageUnavailable indicates the item slot could not be read or written.
	ErrStorageUnavailable = errors.New("item storage unavailable")

	// ErrCorruptCollection indicates the item slot held data that does not decode
	// as an item collection. Readers treat it as an empty collection.
	ErrCorruptCollection = errors.New("item collection corrupt")

	// ErrInvalidImage indicates an uploaded file is not an accepted image.
	ErrInvalidImage = errors.New("invalid image")
)
