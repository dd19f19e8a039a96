package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"AUTH_ISSUER", "AUTH_ALGORITHM", "AUTH_JWT_SECRET", "AUTH_TOKEN_TTL",
		"DATABASE_DRIVER", "DATABASE_FILE", "CORS_ALLOWED_ORIGINS", "TRUST_PROXY_HEADERS", "PORT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "taskboard", cfg.Issuer)
	require.Equal(t, AlgHS256, cfg.Algorithm)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, "tasks.db", cfg.DatabaseFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Empty(t, cfg.CORSOrigins)
	require.False(t, cfg.TrustProxyHeaders)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("AUTH_ALGORITHM", "EdDSA")
	t.Setenv("AUTH_TOKEN_TTL", "90")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://tasks@localhost/tasks")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg := LoadConfig()
	require.Equal(t, AlgEdDSA, cfg.Algorithm)
	require.Equal(t, 90*time.Minute, cfg.TokenTTL)
	require.Equal(t, "postgres", cfg.DatabaseDriver)
	require.Equal(t, "postgres://tasks@localhost/tasks", cfg.DatabaseURL)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "root@example.com", cfg.AdminEmail)
	require.True(t, cfg.TrustProxyHeaders)
}
