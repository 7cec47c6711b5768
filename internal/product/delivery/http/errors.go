package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/product"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, product.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid product id")
	case errors.Is(err, product.ErrMissingName),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, product.ErrInvalidQuantity),
		errors.Is(err, product.ErrInvalidUser),
		errors.Is(err, product.ErrInvalidSubscriber):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
