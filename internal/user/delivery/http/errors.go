package http

import (
	"errors"
	"net/http"

	"taskie/internal/user"
	pkgErrors "taskie/pkg/errors"
)

var errEmptyName = pkgErrors.NewHTTPError(http.StatusBadRequest, "name is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become nil so the caller answers 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrDuplicateEmail):
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, user.ErrInvalidToken):
		return pkgErrors.ErrUnauthorized
	default:
		return nil
	}
}
