package service

import (
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	user := domain.Identity{ID: "u", Role: domain.RoleUser}
	admin := domain.Identity{ID: "a", Role: domain.RoleAdmin}

	require.NoError(t, Authorize(admin, domain.RoleAdmin))
	require.NoError(t, Authorize(user, domain.RoleUser, domain.RoleAdmin))
	require.ErrorIs(t, Authorize(user, domain.RoleAdmin), ErrForbidden)
	require.ErrorIs(t, Authorize(admin), ErrForbidden)
	require.ErrorIs(t, Authorize(domain.Identity{Role: "guest"}, domain.RoleUser), ErrForbidden)
}
