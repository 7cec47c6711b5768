package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/expense"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, expense.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid expense id")
	case errors.Is(err, expense.ErrMissingName),
		errors.Is(err, expense.ErrInvalidAmount):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
