package store

import (
	"context"

	"github.com/questboard/questboard-api/internal/domain"
)

// RoleStore defines the read-only interface for role lookups.
// Roles are seeded by migrations and never created by the resource services.
type RoleStore interface {
	// GetByName retrieves a role by its name.
	// Returns ErrRoleNotFound if the role does not exist.
	GetByName(ctx context.Context, name string) (*domain.Role, error)
}
