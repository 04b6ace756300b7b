package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/questboard/questboard-api/internal/api"
	"github.com/questboard/questboard-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "quest_not_found", err: store.ErrQuestNotFound, want: http.StatusNotFound},
		{name: "user_not_found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "wrapped_not_found", err: fmt.Errorf("get quest 7: %w", store.ErrQuestNotFound), want: http.StatusNotFound},
		{name: "quest_id_exists", err: store.ErrQuestIDExists, want: http.StatusBadRequest},
		{name: "email_exists", err: store.ErrEmailExists, want: http.StatusBadRequest},
		{name: "no_change", err: store.ErrNoChange, want: http.StatusBadRequest},
		{name: "invalid_entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "unknown_error", err: errors.New("dial tcp: timeout"), want: http.StatusInternalServerError},
		// A missing role means a broken deployment, not a caller mistake.
		{name: "role_not_found", err: store.ErrRoleNotFound, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "quest_not_found", err: store.ErrQuestNotFound, want: "Quest not found"},
		{name: "user_not_found", err: store.ErrUserNotFound, want: "User not found"},
		{name: "quest_id_exists", err: store.ErrQuestIDExists, want: "ID in use"},
		{name: "email_exists", err: store.ErrEmailExists, want: "Email already in use"},
		{name: "no_change", err: store.ErrNoChange, want: "No changes were saved"},
		{name: "invalid_entity", err: store.ErrInvalidEntity, want: "Invalid entity data"},
		{name: "unknown_error", err: errors.New("pq: ssl is not enabled"), want: "Database failure"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, api.GetSafeErrorMessage(tt.err))
		})
	}
}
