package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is the generic version of the entity-specific not found errors
	// (e.g., ErrQuestNotFound, ErrUserNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrNoChange is returned when an update or delete matched zero rows
	// even though the target existed moments earlier. It is the staged-commit
	// "nothing was persisted" outcome, distinct from a storage fault, and
	// typically means the row was removed by a concurrent request.
	ErrNoChange = errors.New("no change persisted")

	// Entity-specific "not found" errors

	// ErrQuestNotFound indicates that the requested quest does not exist in the store.
	ErrQuestNotFound = fmt.Errorf("%w: quest", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrRoleNotFound indicates that the requested role does not exist in the store.
	ErrRoleNotFound = fmt.Errorf("%w: role", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrQuestIDExists indicates that a quest with the given ID already exists.
	// Quest IDs are caller-supplied, so creation must reject an ID in use.
	ErrQuestIDExists = fmt.Errorf("%w: quest ID", ErrDuplicate)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
