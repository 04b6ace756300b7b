package transfer

import (
	"time"

	"github.com/questboard/questboard-api/internal/domain"
)

// CreateUpdateUserRequest is the writable user shape. The password is
// required at registration and optional on update; when omitted on update
// the stored hash is kept. Identity and role are never writable here.
type CreateUpdateUserRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=100"`
	Password  string `json:"password"   validate:"omitempty,min=8,max=72"`
}

// UserResponse is the read shape of a user. The role is flattened to its
// name and the password never appears in any shape.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserMapper translates between domain.User and its transfer shapes.
type UserMapper struct{}

// ToEntity produces a new user shell from the caller-supplied writable
// fields. It is used only at creation; the ID is assigned by the store and
// the role is attached by the user service before the entity is persisted.
func (UserMapper) ToEntity(req CreateUpdateUserRequest) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToResponse converts a persisted user to its read shape.
func (UserMapper) ToResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Role != nil {
		resp.Role = user.Role.Name
	}
	return resp
}

// ApplyUpdate overwrites the mutable fields of an already-persisted user in
// place. Identity, role and the stored password hash are left untouched; a
// non-empty password is carried over as plaintext for the service to hash.
func (UserMapper) ApplyUpdate(req CreateUpdateUserRequest, user *domain.User) {
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.Password != "" {
		user.Password = req.Password
	}
	user.UpdatedAt = time.Now().UTC()
}
