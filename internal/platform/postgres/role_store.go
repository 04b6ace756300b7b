package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/questboard/questboard-api/internal/platform/logger"
	"github.com/questboard/questboard-api/internal/store"
)

// RoleStore implements the store.RoleStore interface using PostgreSQL.
// Roles are seeded by migrations; this store only reads them.
type RoleStore struct {
	db           store.DBTX
	queryTimeout time.Duration
	logger       *slog.Logger
}

// NewRoleStore creates a new PostgreSQL implementation of the RoleStore
// interface.
func NewRoleStore(db store.DBTX, queryTimeout time.Duration, log *slog.Logger) *RoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &RoleStore{
		db:           db,
		queryTimeout: queryTimeout,
		logger:       log.With(slog.String("component", "role_store")),
	}
}

var _ store.RoleStore = (*RoleStore)(nil)

// GetByName implements store.RoleStore.GetByName.
// Returns store.ErrRoleNotFound if the role does not exist.
func (s *RoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var role domain.Role
	err := s.db.QueryRowContext(
		ctx,
		`SELECT name, description FROM roles WHERE name = $1`,
		name,
	).Scan(&role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to get role",
			slog.String("error", err.Error()),
			slog.String("role", name))
		return nil, MapError(err)
	}

	return &role, nil
}
