package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/booking"
	pkgErrors "workspace-admin/pkg/errors"
)

func (h *handler) mapError(err error, fallback string) error {
	var unavailable *booking.UnavailableError
	switch {
	case errors.Is(err, booking.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid booking id")
	case errors.Is(err, booking.ErrNotOwner):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "You can only manage your own bookings")
	case errors.As(err, &unavailable):
		msg := unavailable.Message
		if msg == "" {
			msg = "Time slot is not available. Please choose another time."
		}
		return pkgErrors.NewHTTPError(http.StatusConflict, msg)
	case errors.Is(err, booking.ErrInvalidWorkspace),
		errors.Is(err, booking.ErrInvalidUser),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidTime),
		errors.Is(err, booking.ErrTimeOrder),
		errors.Is(err, booking.ErrInvalidAmount):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}
