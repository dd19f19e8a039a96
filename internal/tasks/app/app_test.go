package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		Issuer:              "taskboard-test",
		Algorithm:           AlgHS256,
		TokenTTL:            time.Hour,
		PepperFile:          filepath.Join(dir, "pepper"),
		DatabaseDriver:      "sqlite",
		DatabaseFile:        filepath.Join(dir, "tasks.db"),
		AdminEmail:          "root@example.com",
		AdminPassword:       "root-password",
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
	}
}

func TestNewSeedsAdminAndServes(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	u, err := app.db.Users().GetUserByEmail(t.Context(), "root@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, u.Role)
	require.Equal(t, "Administrator", u.Name)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health tasksdk.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, BuildVersion, health.Version)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDriver = "mongodb"
	_, err := New(cfg)
	require.ErrorContains(t, err, "unsupported DATABASE_DRIVER")

	cfg = testConfig(t)
	cfg.DatabaseDriver = "postgres"
	_, err = New(cfg)
	require.ErrorContains(t, err, "DATABASE_URL")

	cfg = testConfig(t)
	cfg.Algorithm = "none"
	_, err = New(cfg)
	require.ErrorContains(t, err, "token keys")
}
