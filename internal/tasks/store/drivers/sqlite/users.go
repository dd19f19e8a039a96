package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *usersRepo) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx, gen.ListUsersParams{Limit: int64(limit), Offset: int64(offset)})
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out, nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	n, err := r.q.CountUsers(ctx)
	return int(n), err
}

func (r *usersRepo) AnyWithRole(ctx context.Context, role domain.Role) (bool, error) {
	n, err := r.q.CountUsersWithRole(ctx, string(role))
	return n > 0, err
}

func (r *usersRepo) UpdateRole(ctx context.Context, id string, role domain.Role, now time.Time) (domain.User, error) {
	row, err := r.q.UpdateUserRole(ctx, gen.UpdateUserRoleParams{
		Role:      string(role),
		UpdatedAt: now.UTC(),
		ID:        id,
	})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id, hash string, now time.Time) error {
	return affected(r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: hash,
		UpdatedAt:    now.UTC(),
		ID:           id,
	}))
}

func (r *usersRepo) SetMFASecret(ctx context.Context, id, secret string, now time.Time) error {
	return affected(r.q.SetUserMFASecret(ctx, gen.SetUserMFASecretParams{
		MfaSecret: sql.NullString{String: secret, Valid: true},
		UpdatedAt: now.UTC(),
		ID:        id,
	}))
}

func (r *usersRepo) EnableMFA(ctx context.Context, id string, now time.Time) error {
	return affected(r.q.EnableUserMFA(ctx, gen.EnableUserMFAParams{
		MfaEnabledAt: sql.NullTime{Time: now.UTC(), Valid: true},
		ID:           id,
	}))
}

func (r *usersRepo) DisableMFA(ctx context.Context, id string, now time.Time) error {
	return affected(r.q.DisableUserMFA(ctx, gen.DisableUserMFAParams{UpdatedAt: now.UTC(), ID: id}))
}
