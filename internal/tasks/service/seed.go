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
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

const defaultAdminName = "Administrator"

// SeedAdmin is the first administrator, taken from configuration.
type SeedAdmin struct {
	Name     string
	Email    string
	Password string
}

type SeedService struct {
	Store store.Store
	Now   func() time.Time
}

// EnsureAdmin creates the configured admin unless an admin already exists.
// With no password configured nothing is created.
func (s *SeedService) EnsureAdmin(ctx context.Context, seed SeedAdmin) error {
	l := slogx.FromContext(ctx)

	if seed.Password == "" {
		l.Warn("no admin password configured, skipping admin seeding")
		return nil
	}

	name := strings.TrimSpace(seed.Name)
	if name == "" {
		name = defaultAdminName
	}
	email := NormalizeEmail(seed.Email)

	var verr ValidationError
	validateName(&verr, name)
	validateEmail(&verr, email)
	validatePassword(&verr, "password", seed.Password)
	if err := verr.err(); err != nil {
		return err
	}

	has, err := s.Store.Users().AnyWithRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("check admins: %w", err)
	}
	if has {
		l.Debug("admin already present, skipping seeding")
		return nil
	}

	hash, err := cryptox.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := clock(s.Now).now()
	admin := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created := false
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		has, err := tx.Users().AnyWithRole(ctx, domain.RoleAdmin)
		if err != nil || has {
			return err
		}
		if err := tx.Users().CreateUser(ctx, admin); err != nil {
			return err
		}
		created = true
		return nil
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		l.Error("admin email already belongs to a user", slog.String("email", email))
		return ErrEmailAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if !created {
		return nil
	}

	l.Info("seeded admin user", slog.String("user_id", admin.ID), slog.String("email", email))
	return nil
}
