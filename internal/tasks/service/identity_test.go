package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")

	t.Run("missing token", func(t *testing.T) {
		_, err := e.ids.Verify(ctx, "  ")
		require.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := e.ids.Verify(ctx, "not.a.jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := &AuthService{
			Store:    e.store,
			Signer:   e.jwt,
			Issuer:   testIssuer,
			TokenTTL: time.Hour,
			Now:      func() time.Time { return time.Now().Add(-48 * time.Hour) },
		}
		sess, err := past.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "password-alice"})
		require.NoError(t, err)

		_, err = e.ids.Verify(ctx, sess.Token)
		require.ErrorIs(t, err, ErrInvalidToken)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		tok, err := e.jwt.Sign(jwtx.NewClaims(alice.ID, nil, time.Hour, "someone-else", time.Now()))
		require.NoError(t, err)

		_, err = e.ids.Verify(ctx, tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := jwtx.NewHMAC([]byte("ffffffffffffffffffffffffffffffff"), jwtx.VerifyOptions{})
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewClaims(alice.ID, nil, time.Hour, testIssuer, time.Now()))
		require.NoError(t, err)

		_, err = e.ids.Verify(ctx, tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("user gone", func(t *testing.T) {
		tok, err := e.jwt.Sign(jwtx.NewClaims(idx.New().String(), nil, time.Hour, testIssuer, time.Now()))
		require.NoError(t, err)

		_, err = e.ids.Verify(ctx, tok)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("role read fresh from storage", func(t *testing.T) {
		tok, err := e.jwt.Sign(jwtx.NewClaims(alice.ID, nil, time.Hour, testIssuer, time.Now()))
		require.NoError(t, err)

		_, err = e.store.Users().UpdateRole(ctx, alice.ID, "admin", time.Now())
		require.NoError(t, err)

		id, err := e.ids.Verify(ctx, tok)
		require.NoError(t, err)
		require.EqualValues(t, "admin", id.Role)
	})
}
