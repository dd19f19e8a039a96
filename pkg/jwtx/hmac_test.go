package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://tasks.example.com"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestHMACSignAndVerify(t *testing.T) {
	h, err := jwtx.NewHMAC(testSecret, jwtx.VerifyOptions{Issuer: exampleIssuer})
	require.NoError(t, err)
	require.Equal(t, "HS256", h.Alg())

	claims := jwtx.NewClaims("user-123", []string{"pwd"}, 5*time.Minute, exampleIssuer, time.Now().UTC())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, []string{"pwd"}, got.AMR)
	require.Equal(t, claims.ID, got.ID)
}

func TestNewHMACRejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewHMAC([]byte("short"), jwtx.VerifyOptions{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHMACVerifyFailures(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h, err := jwtx.NewHMAC(testSecret, jwtx.VerifyOptions{
		Issuer: exampleIssuer,
		Now:    func() time.Time { return now },
	})
	require.NoError(t, err)

	other, err := jwtx.NewHMAC([]byte("ffffffffffffffffffffffffffffffff"), jwtx.VerifyOptions{})
	require.NoError(t, err)

	sign := func(s jwtx.Signer, c jwtx.Claims) string {
		tok, err := s.Sign(c)
		require.NoError(t, err)
		return tok
	}

	valid := jwtx.NewClaims("user-1", nil, time.Hour, exampleIssuer, now)
	expired := jwtx.NewClaims("user-1", nil, time.Hour, exampleIssuer, now.Add(-2*time.Hour))
	future := jwtx.NewClaims("user-1", nil, time.Hour, exampleIssuer, now.Add(time.Hour))
	wrongIss := jwtx.NewClaims("user-1", nil, time.Hour, "someone-else", now)
	noSub := jwtx.NewClaims("", nil, time.Hour, exampleIssuer, now)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, valid).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	good := sign(h, valid)
	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not.a.jwt", jwtx.ErrMalformed},
		{"empty", "", jwtx.ErrMalformed},
		{"wrong secret", sign(other, valid), jwtx.ErrInvalidSig},
		{"tampered signature", tampered, jwtx.ErrInvalidSig},
		{"alg none", unsigned, jwtx.ErrInvalidSig},
		{"expired", sign(h, expired), jwtx.ErrExpired},
		{"not yet valid", sign(h, future), jwtx.ErrNotYetValid},
		{"wrong issuer", sign(h, wrongIss), jwtx.ErrIssuer},
		{"missing subject", sign(h, noSub), jwtx.ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify(tt.token)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHMACLeeway(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h, err := jwtx.NewHMAC(testSecret, jwtx.VerifyOptions{
		Leeway: 30 * time.Second,
		Now:    func() time.Time { return now },
	})
	require.NoError(t, err)

	// Expired 10s ago but still inside the 30s leeway.
	c := jwtx.NewClaims("user-1", nil, time.Minute, "", now.Add(-70*time.Second))
	tok, err := h.Sign(c)
	require.NoError(t, err)

	_, err = h.Verify(tok)
	require.NoError(t, err)
}
