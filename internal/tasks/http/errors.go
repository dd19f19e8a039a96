package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// writeServiceError is the single place service errors become responses.
// Anything unrecognised is logged and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		e := tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.ErrorCodeValidation, "request validation failed")
		e.Details = verr.Fields
		e.WriteError(w)
		return
	}

	switch {
	case errors.Is(err, httpx.ErrBadJSON):
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.ErrorCodeInvalidRequest, "request body must be a single JSON object").WriteError(w)

	case errors.Is(err, service.ErrEmailAlreadyExists):
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.ErrorCodeEmailExists, "email is already registered").WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		tasksdk.NewAPIError(http.StatusUnauthorized, tasksdk.ErrorCodeInvalidCredentials, "invalid email or password").WriteError(w)
	case errors.Is(err, service.ErrMFARequired):
		tasksdk.NewAPIError(http.StatusUnauthorized, tasksdk.ErrorCodeMFARequired, "a one-time code is required").WriteError(w)

	case errors.Is(err, service.ErrMissingToken), errors.Is(err, httpx.ErrMissingToken):
		httpx.SetBearerChallenge(w, "missing bearer token")
		tasksdk.NewAPIError(http.StatusUnauthorized, tasksdk.ErrorCodeMissingToken, "authentication required").WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		httpx.SetBearerChallenge(w, "token is invalid or expired")
		tasksdk.NewAPIError(http.StatusUnauthorized, tasksdk.ErrorCodeInvalidToken, "token is invalid or expired").WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		httpx.SetBearerChallenge(w, "token subject no longer exists")
		tasksdk.NewAPIError(http.StatusUnauthorized, tasksdk.ErrorCodeUserNotFound, "user not found").WriteError(w)

	case errors.Is(err, service.ErrForbidden):
		tasksdk.NewAPIError(http.StatusForbidden, tasksdk.ErrorCodeForbidden, "insufficient role").WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		tasksdk.NewAPIError(http.StatusNotFound, tasksdk.ErrorCodeNotFound, "resource not found").WriteError(w)

	case errors.Is(err, service.ErrInvalidTOTPCode):
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.ErrorCodeInvalidOTP, "one-time code is invalid").WriteError(w)
	case errors.Is(err, service.ErrMFAAlreadyEnabled):
		tasksdk.NewAPIError(http.StatusConflict, tasksdk.ErrorCodeConflict, "mfa is already enabled").WriteError(w)
	case errors.Is(err, service.ErrMFANotEnabled):
		tasksdk.NewAPIError(http.StatusConflict, tasksdk.ErrorCodeConflict, "mfa is not enabled").WriteError(w)
	case errors.Is(err, service.ErrMFANotEnrolled):
		tasksdk.NewAPIError(http.StatusConflict, tasksdk.ErrorCodeConflict, "mfa enrollment has not been started").WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError, tasksdk.ErrorCodeServerError, "internal server error").WriteError(w)
	}
}
