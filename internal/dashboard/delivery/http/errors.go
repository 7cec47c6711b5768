package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/dashboard"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidWorkspace):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid workspace id")
	case errors.Is(err, dashboard.ErrInvalidDate),
		errors.Is(err, dashboard.ErrDateOrder),
		errors.Is(err, dashboard.ErrInvalidGroupBy):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
