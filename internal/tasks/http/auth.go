package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// AuthHandler serves sign-up, sign-in and the caller's own account.
type AuthHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
	MFAService  *service.MFAService
}

// HandleSignUp handles POST /api/auth/signup
//
//	@Summary		Create an account
//	@Description	Registers a new user with role "user" and returns a bearer token. A requested role is ignored.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.SignUpRequest	true	"New account"
//	@Success		201		{object}	tasksdk.AuthResponse
//	@Failure		400		{object}	tasksdk.APIError	"Validation failed or email already registered"
//	@Failure		429		{object}	tasksdk.APIError	"Rate limit exceeded"
//	@Failure		500		{object}	tasksdk.APIError
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.SignUpRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(sess))
}

// HandleSignIn handles POST /api/auth/signin
//
//	@Summary		Sign in
//	@Description	Exchanges email and password, plus a TOTP code when MFA is enabled, for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.SignInRequest	true	"Credentials"
//	@Success		200		{object}	tasksdk.AuthResponse
//	@Failure		400		{object}	tasksdk.APIError	"Missing email or password"
//	@Failure		401		{object}	tasksdk.APIError	"invalid_credentials or mfa_required"
//	@Failure		429		{object}	tasksdk.APIError	"Rate limit exceeded"
//	@Failure		500		{object}	tasksdk.APIError
//	@Router			/api/auth/signin [post].
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.SignInRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.AuthService.SignIn(r.Context(), service.SignInInput{
		Email:    req.Email,
		Password: req.Password,
		OTP:      req.OTP,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(sess))
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	tasksdk.UserResponse
//	@Failure		401	{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	u, err := h.UserService.Me(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.UserResponse{User: toUser(u)})
}

// HandleChangePassword handles PUT /api/auth/password
//
//	@Summary		Change password
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	tasksdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		204
//	@Failure		400	{object}	tasksdk.APIError
//	@Failure		401	{object}	tasksdk.APIError	"Current password is wrong or token invalid"
//	@Security		BearerAuth
//	@Router			/api/auth/password [put].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	var req tasksdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMFAEnroll handles POST /api/auth/mfa/enroll
//
//	@Summary		Start TOTP enrollment
//	@Description	Generates a TOTP secret. MFA is enabled only after a code is verified.
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	tasksdk.MFAEnrollResponse
//	@Failure		401	{object}	tasksdk.APIError
//	@Failure		409	{object}	tasksdk.APIError	"MFA already enabled"
//	@Security		BearerAuth
//	@Router			/api/auth/mfa/enroll [post].
func (h *AuthHandler) HandleMFAEnroll(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	enr, err := h.MFAService.Enroll(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MFAEnrollResponse{Secret: enr.Secret, URL: enr.URL})
}

// HandleMFAVerify handles POST /api/auth/mfa/verify
//
//	@Summary		Confirm TOTP enrollment
//	@Tags			MFA
//	@Accept			json
//	@Param			request	body	tasksdk.MFACodeRequest	true	"Current code"
//	@Success		204
//	@Failure		400	{object}	tasksdk.APIError	"Invalid code"
//	@Failure		401	{object}	tasksdk.APIError
//	@Failure		409	{object}	tasksdk.APIError	"Not enrolled or already enabled"
//	@Security		BearerAuth
//	@Router			/api/auth/mfa/verify [post].
func (h *AuthHandler) HandleMFAVerify(w http.ResponseWriter, r *http.Request) {
	h.withCode(w, r, h.MFAService.Verify)
}

// HandleMFADisable handles DELETE /api/auth/mfa
//
//	@Summary		Disable TOTP
//	@Tags			MFA
//	@Accept			json
//	@Param			request	body	tasksdk.MFACodeRequest	true	"Current code"
//	@Success		204
//	@Failure		400	{object}	tasksdk.APIError	"Invalid code"
//	@Failure		401	{object}	tasksdk.APIError
//	@Failure		409	{object}	tasksdk.APIError	"MFA not enabled"
//	@Security		BearerAuth
//	@Router			/api/auth/mfa [delete].
func (h *AuthHandler) HandleMFADisable(w http.ResponseWriter, r *http.Request) {
	h.withCode(w, r, h.MFAService.Disable)
}

func (h *AuthHandler) withCode(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id domain.Identity, code string) error,
) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	var req tasksdk.MFACodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := fn(r.Context(), id, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
