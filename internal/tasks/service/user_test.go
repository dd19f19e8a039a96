package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")
	admin := e.admin(t)

	t.Run("me", func(t *testing.T) {
		u, err := e.users.Me(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("list requires admin", func(t *testing.T) {
		_, err := e.users.List(ctx, alice, 1, 10)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin lists users", func(t *testing.T) {
		page, err := e.users.List(ctx, admin, 1, 2)
		require.NoError(t, err)
		require.Len(t, page.Users, 2)
		require.Equal(t, domain.Pagination{Current: 1, Pages: 2, Total: 3, Limit: 2}, page.Pagination)
		require.Equal(t, admin.ID, page.Users[0].ID)
	})

	t.Run("update role requires admin", func(t *testing.T) {
		_, err := e.users.UpdateRole(ctx, alice, bob.ID, "admin")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin promotes and demotes", func(t *testing.T) {
		u, err := e.users.UpdateRole(ctx, admin, bob.ID, "admin")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, u.Role)

		u, err = e.users.UpdateRole(ctx, admin, bob.ID, "user")
		require.NoError(t, err)
		require.Equal(t, domain.RoleUser, u.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := e.users.UpdateRole(ctx, admin, bob.ID, "superuser")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "role")
	})

	t.Run("own role is fixed", func(t *testing.T) {
		_, err := e.users.UpdateRole(ctx, admin, admin.ID, "user")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := e.users.UpdateRole(ctx, admin, "01ARZ3NDEKTSV4RRFFQ69G5FAV", "admin")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")

	err := e.users.ChangePassword(ctx, alice, "wrong-one", "brand-new-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	err = e.users.ChangePassword(ctx, alice, "password-alice", "123")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "newPassword")

	require.NoError(t, e.users.ChangePassword(ctx, alice, "password-alice", "brand-new-pw"))

	_, err = e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "password-alice"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = e.auth.SignIn(ctx, SignInInput{Email: "alice@example.com", Password: "brand-new-pw"})
	require.NoError(t, err)
}
