// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/campuslost/lostfound/pkg/httpx"
	"github.com/campuslost/lostfound/pkg/imaging"
	itemdomain "github.com/campuslost/lostfound/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors. Server error
// messages are replaced with the status text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, false))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrInvalidFilter):
		return http.StatusBadRequest // 400
	case errors.Is(err, imaging.ErrEmpty):
		return http.StatusBadRequest // 400
	case errors.Is(err, imaging.ErrTooLarge):
		return http.StatusRequestEntityTooLarge // 413
	case errors.Is(err, itemdomain.ErrInvalidImage):
		return http.StatusUnsupportedMediaType // 415
	case errors.Is(err, itemdomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, itemdomain.ErrStorageUnavailable),
		errors.Is(err, itemdomain.ErrCorruptCollection):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
