package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. Sub-repositories hang off it so a Tx can hand out
// the same repos bound to the transaction.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the already-normalised email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns users newest first.
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error)

	CountUsers(ctx context.Context) (int, error)

	// AnyWithRole reports whether at least one user has role.
	AnyWithRole(ctx context.Context, role domain.Role) (bool, error)

	// UpdateRole sets the role and returns the updated user.
	UpdateRole(ctx context.Context, id string, role domain.Role, now time.Time) (domain.User, error)

	// UpdatePasswordHash replaces the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id, hash string, now time.Time) error

	// SetMFASecret stores a pending TOTP secret without enabling it.
	SetMFASecret(ctx context.Context, id, secret string, now time.Time) error

	// EnableMFA stamps mfa_enabled_at, requires a stored secret.
	EnableMFA(ctx context.Context, id string, now time.Time) error

	// DisableMFA clears both the secret and mfa_enabled_at.
	DisableMFA(ctx context.Context, id string, now time.Time) error
}

type Tasks interface {
	// CreateTask inserts t as given.
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasks returns owner's tasks matching f, newest first.
	ListTasks(ctx context.Context, owner string, f domain.TaskFilter, offset, limit int) ([]domain.Task, error)

	// CountTasks counts owner's tasks matching f.
	CountTasks(ctx context.Context, owner string, f domain.TaskFilter) (int, error)

	// ListTasksSince returns owner's tasks created or updated at or after since.
	ListTasksSince(ctx context.Context, owner string, since time.Time) ([]domain.Task, error)

	// CountTasksByStatus counts all of owner's tasks grouped by status.
	CountTasksByStatus(ctx context.Context, owner string) (map[domain.TaskStatus]int, error)

	// UpdateTaskForOwner applies p in one statement scoped to (id, owner).
	// A missing task and someone else's task both yield ErrNotFound.
	UpdateTaskForOwner(ctx context.Context, id, owner string, p domain.TaskPatch, now time.Time) (domain.Task, error)

	// DeleteTask removes a task regardless of owner and returns it.
	DeleteTask(ctx context.Context, id string) (domain.Task, error)
}
