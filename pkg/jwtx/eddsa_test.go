package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newEdDSA(t *testing.T, kid string) *jwtx.EdDSA {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	key, err := cryptox.ParseEd25519Key(pemKey)
	require.NoError(t, err)

	e, err := jwtx.NewEdDSA(kid, key, jwtx.VerifyOptions{Issuer: exampleIssuer})
	require.NoError(t, err)
	return e
}

func TestEdDSASignAndVerify(t *testing.T) {
	e := newEdDSA(t, "key-1")
	require.Equal(t, "EdDSA", e.Alg())
	require.Equal(t, "key-1", e.KID())

	token, err := e.Sign(jwtx.NewClaims("user-456", []string{"pwd", "otp"}, 5*time.Minute, exampleIssuer, time.Now().UTC()))
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &jwtx.Claims{})
	require.NoError(t, err)
	require.Equal(t, "key-1", parsed.Header["kid"])

	got, err := e.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-456", got.Subject)
	require.ElementsMatch(t, []string{"pwd", "otp"}, got.AMR)
}

func TestEdDSARejectsForeignKey(t *testing.T) {
	a := newEdDSA(t, "a")
	b := newEdDSA(t, "b")

	token, err := a.Sign(jwtx.NewClaims("user-1", nil, time.Minute, exampleIssuer, time.Now().UTC()))
	require.NoError(t, err)

	_, err = b.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestEdDSARejectsHMACToken(t *testing.T) {
	e := newEdDSA(t, "a")
	h, err := jwtx.NewHMAC(testSecret, jwtx.VerifyOptions{})
	require.NoError(t, err)

	token, err := h.Sign(jwtx.NewClaims("user-1", nil, time.Minute, exampleIssuer, time.Now().UTC()))
	require.NoError(t, err)

	_, err = e.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}
