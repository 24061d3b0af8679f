package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"tableside/internal/service"
	"tableside/internal/session"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrRestaurantNotFound, http.StatusNotFound},
	{service.ErrMenuItemNotFound, http.StatusNotFound},
	{service.ErrTableNotFound, http.StatusNotFound},
	{service.ErrReservationNotFound, http.StatusNotFound},
	{service.ErrOrderNotFound, http.StatusNotFound},
	{session.ErrSessionNotFound, http.StatusNotFound},

	{service.ErrInvalidTransition, http.StatusConflict},
	{session.ErrNoActiveTable, http.StatusConflict},
	{session.ErrNoActiveWizard, http.StatusConflict},

	{session.ErrNotAuthenticated, http.StatusUnauthorized},

	{service.ErrInvalidForm, http.StatusBadRequest},
	{service.ErrInvalidField, http.StatusBadRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest},

	{service.ErrEmptyCart, http.StatusUnprocessableEntity},
	{service.ErrStepIncomplete, http.StatusUnprocessableEntity},
	{service.ErrNoNextStep, http.StatusUnprocessableEntity},
	{service.ErrNoPreviousStep, http.StatusUnprocessableEntity},
	{service.ErrNotAtConfirmStep, http.StatusUnprocessableEntity},
}

func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zap.S().Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
