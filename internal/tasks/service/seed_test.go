package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdmin(t *testing.T) {
	t.Parallel()

	t.Run("skips without password", func(t *testing.T) {
		e := newEnv(t)
		ctx := context.Background()

		require.NoError(t, e.seed.EnsureAdmin(ctx, SeedAdmin{Email: "admin@example.com"}))

		has, err := e.store.Users().AnyWithRole(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("idempotent", func(t *testing.T) {
		e := newEnv(t)
		ctx := context.Background()
		seed := SeedAdmin{Email: "Admin@Example.com", Password: "initial-pw"}

		require.NoError(t, e.seed.EnsureAdmin(ctx, seed))
		require.NoError(t, e.seed.EnsureAdmin(ctx, seed))
		require.NoError(t, e.seed.EnsureAdmin(ctx, SeedAdmin{Email: "second@example.com", Password: "other-pw"}))

		n, err := e.store.Users().CountUsers(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		sess, err := e.auth.SignIn(ctx, SignInInput{Email: "admin@example.com", Password: "initial-pw"})
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, sess.User.Role)
		require.Equal(t, "Administrator", sess.User.Name)
	})

	t.Run("email taken by a regular user", func(t *testing.T) {
		e := newEnv(t)
		ctx := context.Background()
		e.register(t, "taken", "taken@example.com")

		err := e.seed.EnsureAdmin(ctx, SeedAdmin{Email: "taken@example.com", Password: "admin-pw"})
		require.ErrorIs(t, err, ErrEmailAlreadyExists)

		u, err := e.store.Users().GetUserByEmail(ctx, "taken@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.RoleUser, u.Role)
	})

	t.Run("invalid email", func(t *testing.T) {
		e := newEnv(t)
		err := e.seed.EnsureAdmin(context.Background(), SeedAdmin{Email: "nope", Password: "admin-pw"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
