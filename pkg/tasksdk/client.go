package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client calls the public taskboard endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp registers a new account and returns a session for it.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", req)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return c.newSession(out), nil
}

// SignIn exchanges credentials for a session. Accounts with MFA enabled fail
// with ErrorCodeMFARequired until req.OTP is set.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/signin", "", req)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.newSession(out), nil
}

// NewSession wraps a token obtained elsewhere.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/api/health")
}

func (c *Client) Liveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

func (c *Client) Readiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) newSession(a AuthResponse) *Session {
	u := a.User
	return &Session{client: c, token: a.Token, expiresAt: a.ExpiresAt, user: &u}
}
