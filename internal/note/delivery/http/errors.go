package http

import (
	"errors"
	"net/http"

	"taskie/internal/note"
	pkgErrors "taskie/pkg/errors"
)

var (
	errEmptyField = pkgErrors.NewHTTPError(http.StatusBadRequest, "title and content are required")
	errMissingID  = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become nil so the caller answers 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrNoteNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "note not found")
	case errors.Is(err, note.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, note.ErrInvalidPriority.Error())
	default:
		return nil
	}
}
