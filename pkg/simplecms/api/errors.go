package api

import (
	"errors"
	"net/http"

	"github.com/tendant/simple-cms/pkg/simplecms"
)

// statusForError maps domain errors to HTTP status codes. A uniqueness
// violation maps to 409 whether it came from the advisory pre-check or from
// the repository's unique index, so callers see one logical condition.
func statusForError(err error) int {
	switch {
	case errors.Is(err, simplecms.ErrPageNotFound),
		errors.Is(err, simplecms.ErrSeoConfigNotFound),
		errors.Is(err, simplecms.ErrAnnouncementNotFound):
		return http.StatusNotFound
	case errors.Is(err, simplecms.ErrDuplicateSlug),
		errors.Is(err, simplecms.ErrDuplicateTenantConfig):
		return http.StatusConflict
	case errors.Is(err, simplecms.ErrInvalidAnnouncementStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
