package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

func roundTrip(t *testing.T, keys TokenKeys, issuer string) {
	t.Helper()

	token, err := keys.Signer.Sign(jwtx.NewClaims("user-1", []string{jwtx.AMRPassword}, time.Hour, issuer, time.Now()))
	require.NoError(t, err)

	claims, err := keys.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
}

func TestInitTokenKeysHS256(t *testing.T) {
	cfg := Config{Issuer: "taskboard", Algorithm: AlgHS256, JWTSecret: "0123456789abcdef0123456789abcdef"}

	keys, err := InitTokenKeys(cfg, discard)
	require.NoError(t, err)
	require.Equal(t, "HS256", keys.Signer.Alg())
	roundTrip(t, keys, cfg.Issuer)

	// Same secret, same keys.
	again, err := InitTokenKeys(cfg, discard)
	require.NoError(t, err)
	token, err := keys.Signer.Sign(jwtx.NewClaims("user-2", nil, time.Hour, cfg.Issuer, time.Now()))
	require.NoError(t, err)
	_, err = again.Verifier.Verify(token)
	require.NoError(t, err)
}

func TestInitTokenKeysEphemeralSecret(t *testing.T) {
	cfg := Config{Issuer: "taskboard", Algorithm: AlgHS256}

	a, err := InitTokenKeys(cfg, discard)
	require.NoError(t, err)
	b, err := InitTokenKeys(cfg, discard)
	require.NoError(t, err)

	token, err := a.Signer.Sign(jwtx.NewClaims("user-1", nil, time.Hour, cfg.Issuer, time.Now()))
	require.NoError(t, err)
	_, err = b.Verifier.Verify(token)
	require.Error(t, err, "generated secrets must differ per process")
}

func TestInitTokenKeysWeakSecret(t *testing.T) {
	_, err := InitTokenKeys(Config{Algorithm: AlgHS256, JWTSecret: "short"}, discard)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestInitTokenKeysEdDSA(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "signing.pem")
	require.NoError(t, os.WriteFile(path, pemBytes, 0o600))

	cfg := Config{Issuer: "taskboard", Algorithm: "eddsa", SigningKeyFile: path}
	keys, err := InitTokenKeys(cfg, discard)
	require.NoError(t, err)
	require.Equal(t, "EdDSA", keys.Signer.Alg())
	roundTrip(t, keys, cfg.Issuer)

	generated, err := InitTokenKeys(Config{Issuer: "taskboard", Algorithm: AlgEdDSA}, discard)
	require.NoError(t, err)
	roundTrip(t, generated, "taskboard")
}

func TestInitTokenKeysErrors(t *testing.T) {
	_, err := InitTokenKeys(Config{Algorithm: "RS256"}, discard)
	require.ErrorContains(t, err, "unsupported AUTH_ALGORITHM")

	_, err = InitTokenKeys(Config{Algorithm: AlgEdDSA, SigningKeyFile: filepath.Join(t.TempDir(), "missing.pem")}, discard)
	require.ErrorContains(t, err, "failed to read signing key")
}
