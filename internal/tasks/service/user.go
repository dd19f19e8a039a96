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
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type UserService struct {
	Store store.Store
	Now   func() time.Time
}

type UserPage struct {
	Users      []domain.User
	Pagination domain.Pagination
}

// Me returns the caller's full user record.
func (s *UserService) Me(ctx context.Context, id domain.Identity) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id.ID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List pages through all users. Admin only.
func (s *UserService) List(ctx context.Context, id domain.Identity, pageNum, limit int) (UserPage, error) {
	if err := Authorize(id, domain.RoleAdmin); err != nil {
		return UserPage{}, err
	}

	page := domain.NewPage(pageNum, limit)
	users := s.Store.Users()

	total, err := users.CountUsers(ctx)
	if err != nil {
		return UserPage{}, fmt.Errorf("count users: %w", err)
	}
	items, err := users.ListUsers(ctx, page.Offset(), page.Limit)
	if err != nil {
		return UserPage{}, fmt.Errorf("list users: %w", err)
	}
	if items == nil {
		items = []domain.User{}
	}
	return UserPage{Users: items, Pagination: domain.Paginate(page, total)}, nil
}

// UpdateRole changes another user's role. Admin only; admins cannot change
// their own role, so the last admin can never lock everyone out.
func (s *UserService) UpdateRole(ctx context.Context, id domain.Identity, userID, role string) (domain.User, error) {
	if err := Authorize(id, domain.RoleAdmin); err != nil {
		return domain.User{}, err
	}

	var verr ValidationError
	r := domain.Role(strings.ToLower(strings.TrimSpace(role)))
	if !r.Valid() {
		verr.add("role", "must be user or admin")
	}
	if userID == id.ID {
		verr.add("id", "cannot change your own role")
	}
	if err := verr.err(); err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().UpdateRole(ctx, userID, r, clock(s.Now).now())
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("update role: %w", err)
	}

	slogx.FromContext(ctx).Info("user role changed",
		slog.String("target_user_id", u.ID),
		slog.String("role", string(u.Role)),
	)
	return u, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, id domain.Identity, current, next string) error {
	var verr ValidationError
	if current == "" {
		verr.add("currentPassword", "is required")
	}
	validatePassword(&verr, "newPassword", next)
	if err := verr.err(); err != nil {
		return err
	}

	u, err := s.Me(ctx, id)
	if err != nil {
		return err
	}
	if err := cryptox.VerifyPassword(current, u.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash, clock(s.Now).now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	slogx.FromContext(ctx).Info("password changed")
	return nil
}
