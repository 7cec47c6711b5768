package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/plan"
	"workspace-admin/internal/subscriber"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, subscriber.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid subscriber id")
	case errors.Is(err, plan.ErrPlanNotFound):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Selected plan does not exist")
	case errors.Is(err, subscriber.ErrInvalidUser),
		errors.Is(err, subscriber.ErrInvalidPlan),
		errors.Is(err, subscriber.ErrInvalidStatus),
		errors.Is(err, subscriber.ErrInvalidDate),
		errors.Is(err, subscriber.ErrDateOrder):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
