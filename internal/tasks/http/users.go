package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// UsersHandler serves the admin user management endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /api/users
//
//	@Summary		List users
//	@Tags			Users
//	@Produce		json
//	@Param			page	query		int	false	"Page number, 1-based"	default(1)
//	@Param			limit	query		int	false	"Page size"				default(10)
//	@Success		200		{object}	tasksdk.UserListResponse
//	@Failure		401		{object}	tasksdk.APIError
//	@Failure		403		{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	page, err := h.UserService.List(r.Context(), id, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := tasksdk.UserListResponse{
		Users:      make([]tasksdk.User, len(page.Users)),
		Pagination: toPagination(page.Pagination),
	}
	for i, u := range page.Users {
		resp.Users[i] = toUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdateRole handles PATCH /api/users/{id}/role
//
//	@Summary		Change a user's role
//	@Description	Admins cannot change their own role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		tasksdk.UpdateRoleRequest	true	"New role"
//	@Success		200		{object}	tasksdk.UserResponse
//	@Failure		400		{object}	tasksdk.APIError
//	@Failure		401		{object}	tasksdk.APIError
//	@Failure		403		{object}	tasksdk.APIError
//	@Failure		404		{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/users/{id}/role [patch].
func (h *UsersHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	var req tasksdk.UpdateRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.UpdateRole(r.Context(), id, r.PathValue("id"), req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.UserResponse{User: toUser(u)})
}
