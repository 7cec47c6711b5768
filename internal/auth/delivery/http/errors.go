package http

import (
	"errors"
	"net/http"

	"workspace-admin/internal/auth"
	pkgErrors "workspace-admin/pkg/errors"
)

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error, fallback string) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, auth.ErrPasswordMismatch):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Passwords do not match")
	case errors.Is(err, auth.ErrInvalidResetToken):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid reset token")
	case errors.Is(err, auth.ErrNoToken):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, fallback)
	default:
		return pkgErrors.FromBackend(err, fallback)
	}
}

// fieldErrors flattens {"email": ["taken", ...]} to the first message per field.
func fieldErrors(errs any) map[string]string {
	m, ok := errs.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for field, v := range m {
		switch msgs := v.(type) {
		case string:
			out[field] = msgs
		case []any:
			if len(msgs) > 0 {
				if s, ok := msgs[0].(string); ok {
					out[field] = s
				}
			}
		}
	}
	return out
}
