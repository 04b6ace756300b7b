package store

import (
	"context"

	"github.com/questboard/questboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetAll retrieves every persisted user, including each user's role.
	// Returns an empty slice if no users exist.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains all fields except the plaintext password.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. This is the
	// secondary natural-key lookup used for duplicate-registration checks.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create saves a new user to the store and assigns its ID.
	// The caller must have hashed the password and attached a role.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Update modifies an existing user's mutable fields.
	// Returns ErrNoChange if no row was modified.
	// Returns ErrEmailExists when updating to an email already in use.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrNoChange if no row was deleted.
	Delete(ctx context.Context, id int64) error
}
