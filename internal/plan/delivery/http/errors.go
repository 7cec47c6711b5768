package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/plan"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, plan.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid plan id")
	case errors.Is(err, plan.ErrPlanNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Plan not found")
	case errors.Is(err, plan.ErrMissingName),
		errors.Is(err, plan.ErrInvalidDuration),
		errors.Is(err, plan.ErrInvalidPrice):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
