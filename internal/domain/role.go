package domain

import "errors"

// ErrEmptyRoleName is returned when a role name is empty.
var ErrEmptyRoleName = errors.New("role name cannot be empty")

// DefaultRoleName is the role assigned to every newly registered user
// unless configuration overrides it.
const DefaultRoleName = "User"

// Role is a named role that users are assigned at creation time.
// Roles are looked up by name and never created through the resource
// services.
type Role struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks if the Role has valid data.
func (r *Role) Validate() error {
	if r.Name == "" {
		return ErrEmptyRoleName
	}
	return nil
}
