package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
)

const userColumns = `id, name, email, password_hash, role, mfa_secret, mfa_enabled_at, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (domain.User, error) {
	var (
		u       domain.User
		role    string
		secret  sql.NullString
		enabled sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &secret, &enabled, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}

	u.Role = domain.Role(role)
	if secret.Valid {
		u.MFASecret = &secret.String
	}
	if enabled.Valid {
		t := enabled.Time.UTC()
		u.MFAEnabledAt = &t
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapErr(err)
}

func (r *usersRepo) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, u)
	}
	return out, mapErr(rows.Err())
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, mapErr(err)
}

func (r *usersRepo) AnyWithRole(ctx context.Context, role domain.Role) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`, string(role)).Scan(&ok)
	return ok, mapErr(err)
}

func (r *usersRepo) UpdateRole(ctx context.Context, id string, role domain.Role, now time.Time) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users SET role = $1, updated_at = $2 WHERE id = $3 RETURNING `+userColumns,
		string(role), now.UTC(), id,
	))
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id, hash string, now time.Time) error {
	return r.execOne(ctx, `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`, hash, now.UTC(), id)
}

func (r *usersRepo) SetMFASecret(ctx context.Context, id, secret string, now time.Time) error {
	return r.execOne(ctx,
		`UPDATE users SET mfa_secret = $1, mfa_enabled_at = NULL, updated_at = $2 WHERE id = $3`,
		secret, now.UTC(), id,
	)
}

func (r *usersRepo) EnableMFA(ctx context.Context, id string, now time.Time) error {
	return r.execOne(ctx,
		`UPDATE users SET mfa_enabled_at = $1, updated_at = $1 WHERE id = $2 AND mfa_secret IS NOT NULL`,
		now.UTC(), id,
	)
}

func (r *usersRepo) DisableMFA(ctx context.Context, id string, now time.Time) error {
	return r.execOne(ctx,
		`UPDATE users SET mfa_secret = NULL, mfa_enabled_at = NULL, updated_at = $1 WHERE id = $2`,
		now.UTC(), id,
	)
}

// execOne runs an UPDATE that must touch exactly one row.
func (r *usersRepo) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
