package domain

import "time"

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool { return s == StatusPending || s == StatusCompleted }

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	CreatedBy   string // owning user id, never changes
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries the mutable task fields. Nil means unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// TaskFilter narrows a task listing. Zero values match everything.
type TaskFilter struct {
	Status TaskStatus
	Search string // case-insensitive substring of title or description
}
