package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// IdentityService resolves bearer tokens to the current user record.
type IdentityService struct {
	Store    store.Store
	Verifier jwtx.Verifier
}

// Verify checks the token and loads its subject. Role and profile come from
// storage, so a role change applies to tokens already issued.
func (s *IdentityService) Verify(ctx context.Context, raw string) (domain.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Identity{}, ErrMissingToken
	}

	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	u, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Identity{}, ErrUserNotFound
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("get user: %w", err)
	}
	return u.Identity(), nil
}
