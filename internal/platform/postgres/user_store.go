package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/questboard/questboard-api/internal/platform/logger"
	"github.com/questboard/questboard-api/internal/store"
)

// UserStore implements the store.UserStore interface using PostgreSQL
// as the storage backend. Users are always loaded together with their role.
type UserStore struct {
	db           store.DBTX
	queryTimeout time.Duration
	logger       *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. The connection (or transaction) is managed by the caller.
// If log is nil, the default logger is used.
func NewUserStore(db store.DBTX, queryTimeout time.Duration, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserStore{
		db:           db,
		queryTimeout: queryTimeout,
		logger:       log.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

func (s *UserStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

const userColumns = `
	u.id, u.email, u.first_name, u.last_name, u.hashed_password,
	r.name, r.description, u.created_at, u.updated_at
`

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	var role domain.Role

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.HashedPassword,
		&role.Name,
		&role.Description,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = &role
	return &user, nil
}

// GetAll implements store.UserStore.GetAll.
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.name = u.role_name
		ORDER BY u.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// GetByID implements store.UserStore.GetByID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.name = u.role_name
		WHERE u.id = $1
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.name = u.role_name
		WHERE u.email = $1
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return user, nil
}

// Create implements store.UserStore.Create.
// The store assigns the ID. The unique index on email is the commit-time
// backstop for the service-level duplicate-registration check.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.Role == nil {
		return fmt.Errorf("%w: user must have a role", store.ErrInvalidEntity)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		INSERT INTO users (email, first_name, last_name, hashed_password, role_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.HashedPassword,
		user.Role.Name,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		log.Error("failed to create user", slog.String("error", err.Error()))
		return MapUniqueViolation(err, store.ErrEmailExists)
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

// Update implements store.UserStore.Update.
// The identity and role columns are never part of the SET list.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, hashed_password = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.HashedPassword,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return MapUniqueViolation(err, store.ErrEmailExists)
	}

	return CheckRowsAffected(result, "user")
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, "user")
}
