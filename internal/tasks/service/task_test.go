package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateTask(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")

	task, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: "T", Description: "D"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, task.Status)
	require.Equal(t, alice.ID, task.CreatedBy)

	page, err := e.tasks.List(ctx, alice, ListQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	require.Equal(t, task.ID, page.Tasks[0].ID)
	require.Equal(t, "T", page.Tasks[0].Title)
	require.Equal(t, "D", page.Tasks[0].Description)
	require.Equal(t, domain.StatusPending, page.Tasks[0].Status)
	require.Equal(t, alice.ID, page.Tasks[0].CreatedBy)

	t.Run("explicit status", func(t *testing.T) {
		done, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: "done", Status: "completed"})
		require.NoError(t, err)
		require.Equal(t, domain.StatusCompleted, done.Status)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: "   ", Status: "archived"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "title")
		require.Contains(t, verr.Fields, "status")
	})
}

func TestListTasksPagination(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")

	for i := range 25 {
		_, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: fmt.Sprintf("task %02d", i)})
		require.NoError(t, err)
	}
	_, err := e.tasks.Create(ctx, bob, CreateTaskInput{Title: "bob's"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for pageNum, want := range map[int]int{1: 10, 2: 10, 3: 5} {
		page, err := e.tasks.List(ctx, alice, ListQuery{Page: pageNum, Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Tasks, want, "page %d", pageNum)
		require.Equal(t, domain.Pagination{Current: pageNum, Pages: 3, Total: 25, Limit: 10}, page.Pagination)
		for _, task := range page.Tasks {
			require.Equal(t, alice.ID, task.CreatedBy)
			require.False(t, seen[task.ID])
			seen[task.ID] = true
		}
	}
	require.Len(t, seen, 25)

	t.Run("newest first", func(t *testing.T) {
		page, err := e.tasks.List(ctx, alice, ListQuery{})
		require.NoError(t, err)
		require.Equal(t, "task 24", page.Tasks[0].Title)
		require.Equal(t, 10, page.Pagination.Limit)
	})

	t.Run("past the end", func(t *testing.T) {
		page, err := e.tasks.List(ctx, alice, ListQuery{Page: 9, Limit: 10})
		require.NoError(t, err)
		require.Empty(t, page.Tasks)
		require.NotNil(t, page.Tasks)
		require.Equal(t, 25, page.Pagination.Total)
	})

	t.Run("limit capped", func(t *testing.T) {
		page, err := e.tasks.List(ctx, alice, ListQuery{Limit: 1000})
		require.NoError(t, err)
		require.Len(t, page.Tasks, 25)
		require.Equal(t, domain.MaxPageLimit, page.Pagination.Limit)
		require.Equal(t, 1, page.Pagination.Pages)
	})
}

func TestListTasksHugePage(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")

	for i := range 3 {
		_, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: fmt.Sprintf("task %d", i)})
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		limit int
	}{
		{"default limit", 10},
		{"max limit", domain.MaxPageLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := e.tasks.List(ctx, alice, ListQuery{Page: math.MaxInt, Limit: tt.limit})
			require.NoError(t, err)
			require.Empty(t, page.Tasks)
			require.Equal(t, 3, page.Pagination.Total)
			require.Equal(t, domain.MaxPageNumber, page.Pagination.Current)
		})
	}
}

func TestListTasksFilters(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")

	for _, in := range []CreateTaskInput{
		{Title: "Buy milk", Description: "semi skimmed"},
		{Title: "Write report", Description: "quarterly MILK figures", Status: "completed"},
		{Title: "Call mum"},
	} {
		_, err := e.tasks.Create(ctx, alice, in)
		require.NoError(t, err)
	}

	page, err := e.tasks.List(ctx, alice, ListQuery{Search: "milk"})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 2)
	require.Equal(t, 2, page.Pagination.Total)

	page, err = e.tasks.List(ctx, alice, ListQuery{Search: "milk", Status: "pending"})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	require.Equal(t, "Buy milk", page.Tasks[0].Title)

	_, err = e.tasks.List(ctx, alice, ListQuery{Status: "someday"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")

	task, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: "Draft", Description: "first"})
	require.NoError(t, err)

	t.Run("owner updates", func(t *testing.T) {
		got, err := e.tasks.Update(ctx, alice, task.ID, UpdateTaskInput{Status: ptr("completed")})
		require.NoError(t, err)
		require.Equal(t, domain.StatusCompleted, got.Status)
		require.Equal(t, "Draft", got.Title)
		require.Equal(t, "first", got.Description)
		require.Equal(t, alice.ID, got.CreatedBy)
		require.True(t, got.UpdatedAt.After(task.UpdatedAt))
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		_, err := e.tasks.Update(ctx, bob, task.ID, UpdateTaskInput{Title: ptr("stolen")})
		require.ErrorIs(t, err, ErrNotFound)

		page, err := e.tasks.List(ctx, alice, ListQuery{})
		require.NoError(t, err)
		require.Equal(t, "Draft", page.Tasks[0].Title)
	})

	t.Run("admin non-owner gets not found too", func(t *testing.T) {
		_, err := e.tasks.Update(ctx, e.admin(t), task.ID, UpdateTaskInput{Title: ptr("admin edit")})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := e.tasks.Update(ctx, alice, "01ARZ3NDEKTSV4RRFFQ69G5FAV", UpdateTaskInput{Title: ptr("x")})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := e.tasks.Update(ctx, alice, task.ID, UpdateTaskInput{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := e.tasks.Update(ctx, alice, task.ID, UpdateTaskInput{Title: ptr(" ")})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "title")
	})

	t.Run("bad status", func(t *testing.T) {
		_, err := e.tasks.Update(ctx, alice, task.ID, UpdateTaskInput{Status: ptr("")})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "status")
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")
	admin := e.admin(t)

	task, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: "Mine"})
	require.NoError(t, err)

	t.Run("owner without admin role is forbidden", func(t *testing.T) {
		_, err := e.tasks.Delete(ctx, alice, task.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("non-admin gets forbidden even for missing task", func(t *testing.T) {
		_, err := e.tasks.Delete(ctx, alice, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin deletes any task", func(t *testing.T) {
		got, err := e.tasks.Delete(ctx, admin, task.ID)
		require.NoError(t, err)
		require.Equal(t, task.ID, got.ID)

		page, err := e.tasks.List(ctx, alice, ListQuery{})
		require.NoError(t, err)
		require.Empty(t, page.Tasks)
	})

	t.Run("admin deleting twice gets not found", func(t *testing.T) {
		_, err := e.tasks.Delete(ctx, admin, task.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskSummary(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice", "alice@example.com")

	for i := range 4 {
		task, err := e.tasks.Create(ctx, alice, CreateTaskInput{Title: fmt.Sprintf("t%d", i)})
		require.NoError(t, err)
		if i == 0 {
			_, err = e.tasks.Update(ctx, alice, task.ID, UpdateTaskInput{Status: ptr("completed")})
			require.NoError(t, err)
		}
	}

	sum, err := e.tasks.Summary(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, 4, sum.Total)
	require.Equal(t, 1, sum.Completed)
	require.Equal(t, 3, sum.Pending)
	require.Equal(t, 25, sum.CompletionRate)
	require.Len(t, sum.Weekly, WeeklyWindowDays)
	require.Len(t, sum.Monthly, MonthlyWindowDays)

	created := 0
	for _, d := range sum.Monthly {
		created += d.Tasks
	}
	require.Equal(t, 4, created)
}
