package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type TaskService struct {
	Store store.Store
	Now   func() time.Time
}

// ListQuery is a task listing request. Zero page and limit take defaults.
type ListQuery struct {
	Page   int
	Limit  int
	Status string
	Search string
}

type TaskPage struct {
	Tasks      []domain.Task
	Pagination domain.Pagination
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// UpdateTaskInput fields left nil are not changed.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// List returns one page of the caller's own tasks, newest first.
func (s *TaskService) List(ctx context.Context, id domain.Identity, q ListQuery) (TaskPage, error) {
	var verr ValidationError
	filter := domain.TaskFilter{
		Status: parseStatus(&verr, q.Status, ""),
		Search: strings.TrimSpace(q.Search),
	}
	if err := verr.err(); err != nil {
		return TaskPage{}, err
	}

	page := domain.NewPage(q.Page, q.Limit)
	tasks := s.Store.Tasks()

	total, err := tasks.CountTasks(ctx, id.ID, filter)
	if err != nil {
		return TaskPage{}, fmt.Errorf("count tasks: %w", err)
	}

	items, err := tasks.ListTasks(ctx, id.ID, filter, page.Offset(), page.Limit)
	if err != nil {
		return TaskPage{}, fmt.Errorf("list tasks: %w", err)
	}
	if items == nil {
		items = []domain.Task{}
	}

	return TaskPage{Tasks: items, Pagination: domain.Paginate(page, total)}, nil
}

// Create stores a task owned by the caller. Status defaults to pending.
func (s *TaskService) Create(ctx context.Context, id domain.Identity, in CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	desc := strings.TrimSpace(in.Description)

	var verr ValidationError
	validateTitle(&verr, title)
	validateDescription(&verr, desc)
	status := parseStatus(&verr, in.Status, domain.StatusPending)
	if err := verr.err(); err != nil {
		return domain.Task{}, err
	}

	now := clock(s.Now).now()
	t := domain.Task{
		ID:          idx.NewAt(now).String(),
		Title:       title,
		Description: desc,
		Status:      status,
		CreatedBy:   id.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrUserNotFound
		}
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	slogx.FromContext(ctx).Info("task created", slog.String("task_id", t.ID))
	return t, nil
}

// Update patches one of the caller's tasks. Someone else's task is reported
// as ErrNotFound, exactly like a missing one.
func (s *TaskService) Update(ctx context.Context, id domain.Identity, taskID string, in UpdateTaskInput) (domain.Task, error) {
	var (
		verr  ValidationError
		patch domain.TaskPatch
	)
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		validateTitle(&verr, title)
		patch.Title = &title
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		validateDescription(&verr, desc)
		patch.Description = &desc
	}
	if in.Status != nil {
		status := parseStatus(&verr, *in.Status, "")
		if status == "" {
			verr.add("status", "must be pending or completed")
		}
		patch.Status = &status
	}
	if patch.Empty() {
		verr.add("body", "at least one of title, description or status is required")
	}
	if err := verr.err(); err != nil {
		return domain.Task{}, err
	}

	t, err := s.Store.Tasks().UpdateTaskForOwner(ctx, taskID, id.ID, patch, clock(s.Now).now())
	if errors.Is(err, store.ErrNotFound) {
		return domain.Task{}, ErrNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// Delete removes any task, but only for admins.
func (s *TaskService) Delete(ctx context.Context, id domain.Identity, taskID string) (domain.Task, error) {
	if err := Authorize(id, domain.RoleAdmin); err != nil {
		return domain.Task{}, err
	}

	t, err := s.Store.Tasks().DeleteTask(ctx, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Task{}, ErrNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("delete task: %w", err)
	}

	slogx.FromContext(ctx).Info("task deleted",
		slog.String("task_id", t.ID),
		slog.String("owner_id", t.CreatedBy),
	)
	return t, nil
}

// Summary builds the caller's dashboard figures.
func (s *TaskService) Summary(ctx context.Context, id domain.Identity) (domain.Summary, error) {
	now := clock(s.Now).now()
	tasks := s.Store.Tasks()

	counts, err := tasks.CountTasksByStatus(ctx, id.ID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("count tasks: %w", err)
	}

	recent, err := tasks.ListTasksSince(ctx, id.ID, startOfDay(now).AddDate(0, 0, -(MonthlyWindowDays-1)))
	if err != nil {
		return domain.Summary{}, fmt.Errorf("list recent tasks: %w", err)
	}

	return Summarize(counts, recent, now), nil
}
