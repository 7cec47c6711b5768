package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/workspace"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, workspace.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid workspace id")
	case errors.Is(err, workspace.ErrMissingFields),
		errors.Is(err, workspace.ErrInvalidCapacity):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
