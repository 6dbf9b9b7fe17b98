package handlers

import (
	"errors"
	"net/http"

	"luxemart/internal/repositories"
	"luxemart/internal/services"
	httputil "luxemart/internal/utility/http"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation 400, not-found 404, conflict 409, everything else a generic 500.
func respondServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, repositories.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, notFoundMessage, nil)
	case errors.Is(err, services.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error(), nil)
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "Internal Server Error", err)
	}
}
