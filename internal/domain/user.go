package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the questboard.
// Every persisted user has exactly one Role, assigned at creation time.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Password holds the plaintext password transiently during
	// registration and updates. It is never persisted or serialized.
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	Role           *Role     `json:"role,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User shell from the caller-supplied writable fields
// and sets the creation/update timestamps. The ID is assigned by the store
// at commit time and the Role is attached by the user service.
// Returns an error if validation fails.
//
// NOTE: The plaintext password is only carried on the struct; the caller is
// responsible for hashing it before the user is stored.
func NewUser(email, firstName, lastName, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		switch {
		case len(u.Password) < 8:
			return ErrPasswordTooShort
		case len(u.Password) > 72: // bcrypt's practical limit
			return ErrPasswordTooLong
		}
		return nil
	}

	// Without a plaintext password the user must already carry a hash
	// (the case for users loaded back from the database).
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs basic structural validation of an email address.
// It requires a non-empty local part and a domain part containing a dot that
// is neither the first nor the last character of the domain.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	dom := email[at+1:]
	dot := strings.IndexByte(dom, '.')
	return dot > 0 && dot < len(dom)-1
}
