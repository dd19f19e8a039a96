package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

const taskColumns = `id, title, description, status, created_by, created_at, updated_at`

const taskFilter = `created_by = $1
  AND ($2 = '' OR status = $2)
  AND ($3 = '' OR title ILIKE $3 OR description ILIKE $3)`

type tasksRepo struct {
	db dbtx
}

func scanTask(row scanner) (domain.Task, error) {
	var (
		t      domain.Task
		status string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Task{}, err
	}
	t.Status = domain.TaskStatus(status)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Title, t.Description, string(t.Status), t.CreatedBy, t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
	return mapErr(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context, owner string, f domain.TaskFilter, offset, limit int) ([]domain.Task, error) {
	return r.query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE `+taskFilter+`
		 ORDER BY created_at DESC, id DESC LIMIT $4 OFFSET $5`,
		owner, string(f.Status), likePattern(f.Search), limit, offset,
	)
}

func (r *tasksRepo) CountTasks(ctx context.Context, owner string, f domain.TaskFilter) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE `+taskFilter,
		owner, string(f.Status), likePattern(f.Search),
	).Scan(&n)
	return n, mapErr(err)
}

func (r *tasksRepo) ListTasksSince(ctx context.Context, owner string, since time.Time) ([]domain.Task, error) {
	return r.query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE created_by = $1 AND (created_at >= $2 OR updated_at >= $2)
		 ORDER BY created_at DESC, id DESC`,
		owner, since.UTC(),
	)
}

func (r *tasksRepo) CountTasksByStatus(ctx context.Context, owner string) (map[domain.TaskStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM tasks WHERE created_by = $1 GROUP BY status`, owner)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make(map[domain.TaskStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, mapErr(err)
		}
		out[domain.TaskStatus(status)] = n
	}
	return out, mapErr(rows.Err())
}

func (r *tasksRepo) UpdateTaskForOwner(ctx context.Context, id, owner string, p domain.TaskPatch, now time.Time) (domain.Task, error) {
	var status *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}

	t, err := scanTask(r.db.QueryRowContext(ctx,
		`UPDATE tasks
		 SET title = COALESCE($1, title),
		     description = COALESCE($2, description),
		     status = COALESCE($3, status),
		     updated_at = $4
		 WHERE id = $5 AND created_by = $6
		 RETURNING `+taskColumns,
		nullString(p.Title), nullString(p.Description), nullString(status), now.UTC(), id, owner,
	))
	if err != nil {
		return domain.Task{}, mapErr(err)
	}
	return t, nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, `DELETE FROM tasks WHERE id = $1 RETURNING `+taskColumns, id))
	if err != nil {
		return domain.Task{}, mapErr(err)
	}
	return t, nil
}

func (r *tasksRepo) query(ctx context.Context, q string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, t)
	}
	return out, mapErr(rows.Err())
}
