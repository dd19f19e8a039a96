package service

import (
	"slices"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

// Authorize allows id only when its role is one of required. An empty
// required set denies everyone.
func Authorize(id domain.Identity, required ...domain.Role) error {
	if slices.Contains(required, id.Role) {
		return nil
	}
	return ErrForbidden
}
