package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/user"
	pkgErrors "workspace-admin/pkg/errors"
)

// mapError translates user errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, user.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid user id")
	case errors.Is(err, user.ErrMissingFields):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Name, email and password are required")
	case errors.Is(err, user.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Status must be active or inactive")
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
