package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/transaction"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, transaction.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid transaction id")
	case errors.Is(err, transaction.ErrInvalidUser),
		errors.Is(err, transaction.ErrInvalidType),
		errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInvalidDate),
		errors.Is(err, transaction.ErrDateOrder),
		errors.Is(err, transaction.ErrInvalidGroupBy):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
