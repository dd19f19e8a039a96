package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite/gen"
)

type tasksRepo struct {
	q *gen.Queries
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	err := r.q.CreateTask(ctx, gen.CreateTaskParams{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context, owner string, f domain.TaskFilter, offset, limit int) ([]domain.Task, error) {
	rows, err := r.q.ListTasks(ctx, gen.ListTasksParams{
		Owner:  owner,
		Status: string(f.Status),
		Search: likePattern(f.Search),
		Lim:    int64(limit),
		Off:    int64(offset),
	})
	if err != nil {
		return nil, err
	}
	return mapTasks(rows), nil
}

func (r *tasksRepo) CountTasks(ctx context.Context, owner string, f domain.TaskFilter) (int, error) {
	n, err := r.q.CountTasks(ctx, gen.CountTasksParams{
		Owner:  owner,
		Status: string(f.Status),
		Search: likePattern(f.Search),
	})
	return int(n), err
}

func (r *tasksRepo) ListTasksSince(ctx context.Context, owner string, since time.Time) ([]domain.Task, error) {
	rows, err := r.q.ListTasksSince(ctx, gen.ListTasksSinceParams{Owner: owner, Since: since.UTC()})
	if err != nil {
		return nil, err
	}
	return mapTasks(rows), nil
}

func (r *tasksRepo) CountTasksByStatus(ctx context.Context, owner string) (map[domain.TaskStatus]int, error) {
	rows, err := r.q.CountTasksByStatus(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.TaskStatus]int, len(rows))
	for _, row := range rows {
		out[domain.TaskStatus(row.Status)] = int(row.N)
	}
	return out, nil
}

func (r *tasksRepo) UpdateTaskForOwner(ctx context.Context, id, owner string, p domain.TaskPatch, now time.Time) (domain.Task, error) {
	var status *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}

	row, err := r.q.UpdateTaskForOwner(ctx, gen.UpdateTaskForOwnerParams{
		Title:       mapOptionalString(p.Title),
		Description: mapOptionalString(p.Description),
		Status:      mapOptionalString(status),
		UpdatedAt:   now.UTC(),
		ID:          id,
		Owner:       owner,
	})
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) (domain.Task, error) {
	row, err := r.q.DeleteTask(ctx, id)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func mapTasks(rows []gen.Task) []domain.Task {
	out := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTask(row))
	}
	return out
}
