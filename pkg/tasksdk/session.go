package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Session is an authenticated client bound to one bearer token.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time
	user      *User
}

func (s *Session) Token() string { return s.token }

// ExpiresAt is zero for sessions built with NewSession.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User is the account returned at sign-in, or nil for NewSession sessions.
// Call Me for a fresh copy.
func (s *Session) User() *User { return s.user }

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.do(ctx, method, path, s.token, body)
}

// ============================================================================
// Account
// ============================================================================

func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (s *Session) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	resp, err := s.do(ctx, http.MethodPut, "/api/auth/password", req)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) EnrollMFA(ctx context.Context) (*MFAEnrollResponse, error) {
	resp, err := s.do(ctx, http.MethodPost, "/api/auth/mfa/enroll", nil)
	if err != nil {
		return nil, err
	}

	var out MFAEnrollResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) VerifyMFA(ctx context.Context, code string) error {
	resp, err := s.do(ctx, http.MethodPost, "/api/auth/mfa/verify", MFACodeRequest{Code: code})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) DisableMFA(ctx context.Context, code string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/api/auth/mfa", MFACodeRequest{Code: code})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Tasks
// ============================================================================

func (s *Session) ListTasks(ctx context.Context, p ListTasksParams) (*TaskListResponse, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	path := "/api/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out TaskListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	resp, err := s.do(ctx, http.MethodPost, "/api/tasks", req)
	if err != nil {
		return nil, err
	}

	var out TaskResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	resp, err := s.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out TaskResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

// DeleteTask requires the admin role.
func (s *Session) DeleteTask(ctx context.Context, id string) (*DeleteTaskResponse, error) {
	resp, err := s.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out DeleteTaskResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Summary(ctx context.Context) (*Summary, error) {
	resp, err := s.do(ctx, http.MethodGet, "/api/tasks/summary", nil)
	if err != nil {
		return nil, err
	}

	var out Summary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Users (admin)
// ============================================================================

func (s *Session) ListUsers(ctx context.Context, page, limit int) (*UserListResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/users"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out UserListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateUserRole(ctx context.Context, id, role string) (*User, error) {
	resp, err := s.do(ctx, http.MethodPatch, "/api/users/"+url.PathEscape(id)+"/role", UpdateRoleRequest{Role: role})
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}
