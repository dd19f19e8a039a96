package tasksdk

import "time"

// ============================================================================
// Users and Authentication
// ============================================================================

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	MFAEnabled bool      `json:"mfaEnabled"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SignUpRequest is the POST /api/auth/signup body. Role is accepted for
// compatibility with older clients and ignored by the server.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// OTP is the current TOTP code, required once MFA is enabled.
	OTP string `json:"otp,omitempty"`
}

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type UserResponse struct {
	User User `json:"user"`
}

type UserListResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// ============================================================================
// MFA
// ============================================================================

type MFAEnrollResponse struct {
	// Secret is the base32 TOTP secret for manual entry.
	Secret string `json:"secret"`

	// URL is the otpauth:// URI, usually rendered as a QR code.
	URL string `json:"url"`
}

type MFACodeRequest struct {
	Code string `json:"code"`
}

// ============================================================================
// Tasks
// ============================================================================

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
}

// ListTasksParams are the GET /api/tasks query parameters. Zero values are
// left out of the query string.
type ListTasksParams struct {
	Page   int
	Limit  int
	Status string
	Search string
}

type TaskListResponse struct {
	Tasks      []Task     `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// UpdateTaskRequest fields left nil are not changed.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type TaskResponse struct {
	Task Task `json:"task"`
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
	Task    Task   `json:"task"`
}

// ============================================================================
// Analytics
// ============================================================================

type Summary struct {
	Total          int           `json:"total"`
	Completed      int           `json:"completed"`
	Pending        int           `json:"pending"`
	CompletionRate int           `json:"completionRate"`
	Weekly         []DayActivity `json:"weekly"`
	Monthly        []DayCount    `json:"monthly"`
}

type DayActivity struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type DayCount struct {
	Date  string `json:"date"`
	Tasks int    `json:"tasks"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
