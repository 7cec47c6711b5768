package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/attendance"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, attendance.ErrInvalidEmployee):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid employee id")
	case errors.Is(err, attendance.ErrNotSelf):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "You can only check yourself in or out")
	case errors.Is(err, attendance.ErrInvalidTime),
		errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrDateOrder):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
