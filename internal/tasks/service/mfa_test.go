package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestMFALifecycle(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")

	code := func(secret string) string {
		c, err := totp.GenerateCodeCustom(secret, e.clock.Now(), totpOpts)
		require.NoError(t, err)
		return c
	}

	err := e.mfa.Verify(ctx, alice, "123456")
	require.ErrorIs(t, err, ErrMFANotEnrolled)

	enr, err := e.mfa.Enroll(ctx, alice)
	require.NoError(t, err)
	require.NotEmpty(t, enr.Secret)
	require.Contains(t, enr.URL, "otpauth://totp/")

	// Pending enrollment does not affect sign in.
	_, err = e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "password-alice"})
	require.NoError(t, err)

	require.ErrorIs(t, e.mfa.Verify(ctx, alice, "000000x"), ErrInvalidTOTPCode)
	require.NoError(t, e.mfa.Verify(ctx, alice, code(enr.Secret)))
	require.ErrorIs(t, e.mfa.Verify(ctx, alice, code(enr.Secret)), ErrMFAAlreadyEnabled)

	_, err = e.mfa.Enroll(ctx, alice)
	require.ErrorIs(t, err, ErrMFAAlreadyEnabled)

	t.Run("sign in needs a code", func(t *testing.T) {
		_, err := e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "password-alice"})
		require.ErrorIs(t, err, ErrMFARequired)
	})

	t.Run("bad code is invalid credentials", func(t *testing.T) {
		_, err := e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "password-alice", OTP: "999999x"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password never reveals mfa", func(t *testing.T) {
		_, err := e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "wrong-pw"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("good code", func(t *testing.T) {
		sess, err := e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "password-alice", OTP: code(enr.Secret)})
		require.NoError(t, err)

		claims, err := e.jwt.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, []string{jwtx.AMRPassword, jwtx.AMROTP}, claims.AMR)
	})

	t.Run("disable", func(t *testing.T) {
		require.ErrorIs(t, e.mfa.Disable(ctx, alice, "bad"), ErrInvalidTOTPCode)
		require.NoError(t, e.mfa.Disable(ctx, alice, code(enr.Secret)))
		require.ErrorIs(t, e.mfa.Disable(ctx, alice, code(enr.Secret)), ErrMFANotEnabled)

		_, err := e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "password-alice"})
		require.NoError(t, err)
	})
}
