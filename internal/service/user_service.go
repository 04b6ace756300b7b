package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/questboard/questboard-api/internal/store"
	"github.com/questboard/questboard-api/internal/transfer"
	"golang.org/x/crypto/bcrypt"
)

// UserService enforces the business rules for the user resource.
// Uniqueness is by email rather than numeric identity, and every new user
// is assigned the configured default role before being persisted. If the
// default role cannot be found, creation fails rather than producing a
// roleless user.
type UserService struct {
	*Resource[domain.User, transfer.CreateUpdateUserRequest, transfer.UserResponse]

	users       store.UserStore
	roles       store.RoleStore
	defaultRole string
	bcryptCost  int
	logger      *slog.Logger
}

// NewUserService creates the user resource service. defaultRole is the name
// of the role attached to new users; bcryptCost <= 0 falls back to the
// bcrypt default.
func NewUserService(
	users store.UserStore,
	roles store.RoleStore,
	defaultRole string,
	bcryptCost int,
	logger *slog.Logger,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultRole == "" {
		defaultRole = domain.DefaultRoleName
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	s := &UserService{
		users:       users,
		roles:       roles,
		defaultRole: defaultRole,
		bcryptCost:  bcryptCost,
		logger:      logger.With(slog.String("component", "user_service")),
	}

	checkEmailFree := func(ctx context.Context, req transfer.CreateUpdateUserRequest) error {
		_, err := users.GetByEmail(ctx, req.Email)
		switch {
		case err == nil:
			return store.ErrEmailExists
		case errors.Is(err, store.ErrNotFound):
			return nil
		default:
			return err
		}
	}

	s.Resource = NewResource(
		"user",
		users,
		transfer.UserMapper{},
		(*domain.User).Validate,
		logger,
		WithCreatePrecondition[domain.User, transfer.CreateUpdateUserRequest, transfer.UserResponse](checkEmailFree),
		WithBeforeCreate[domain.User, transfer.CreateUpdateUserRequest, transfer.UserResponse](s.prepareNewUser),
		WithBeforeUpdate[domain.User, transfer.CreateUpdateUserRequest, transfer.UserResponse](s.hashPassword),
	)

	return s
}

// GetByEmail retrieves a user by email. It is an internal primitive used by
// the registration uniqueness check and is not exposed as a route.
func (s *UserService) GetByEmail(ctx context.Context, email string) (transfer.UserResponse, error) {
	var zero transfer.UserResponse

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return zero, err
	}
	return transfer.UserMapper{}.ToResponse(user), nil
}

// prepareNewUser hashes the registration password and attaches the default
// role. Runs before the first persistence of a user.
func (s *UserService) prepareNewUser(ctx context.Context, user *domain.User) error {
	if user.Password == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyPassword)
	}

	if err := s.hashPassword(ctx, user); err != nil {
		return err
	}

	role, err := s.roles.GetByName(ctx, s.defaultRole)
	if err != nil {
		s.logger.Error("default role lookup failed",
			slog.String("role", s.defaultRole),
			slog.String("error", err.Error()))
		return fmt.Errorf("attach default role %q: %w", s.defaultRole, err)
	}
	user.Role = role

	return nil
}

// hashPassword replaces a pending plaintext password with its bcrypt hash.
// A user without a pending password is left untouched.
func (s *UserService) hashPassword(_ context.Context, user *domain.User) error {
	if user.Password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.HashedPassword = string(hash)
	user.Password = ""
	return nil
}
