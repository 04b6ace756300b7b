package domain_test

import (
	"strings"
	"testing"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid_user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("a@b.com", "Ada", "Lovelace", "correcthorse")
		require.NoError(t, err)

		assert.Equal(t, "a@b.com", user.Email)
		assert.Zero(t, user.ID, "the store assigns the ID")
		assert.Nil(t, user.Role, "the service attaches the role")
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "empty_email", email: "", password: "correcthorse", wantErr: domain.ErrEmptyEmail},
		{name: "missing_at", email: "ab.com", password: "correcthorse", wantErr: domain.ErrInvalidEmail},
		{name: "missing_domain_dot", email: "a@bcom", password: "correcthorse", wantErr: domain.ErrInvalidEmail},
		{name: "trailing_at", email: "a@", password: "correcthorse", wantErr: domain.ErrInvalidEmail},
		{name: "short_password", email: "a@b.com", password: "short", wantErr: domain.ErrPasswordTooShort},
		{name: "long_password", email: "a@b.com", password: strings.Repeat("x", 73), wantErr: domain.ErrPasswordTooLong},
		{name: "empty_password", email: "a@b.com", password: "", wantErr: domain.ErrEmptyPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewUser(tt.email, "Ada", "Lovelace", tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded back from the database carries only the hash.
	user := &domain.User{
		Email:          "a@b.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())
}
