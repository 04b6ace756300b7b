package api

import (
	"errors"
	"net/http"

	"github.com/questboard/questboard-api/internal/store"
)

// MapErrorToStatusCode maps service errors to HTTP status codes without
// leaking internal error detail to clients.
//
// Duplicates and failed commits deliberately map to 400 rather than 409:
// that is the contract existing callers were built against.
// A missing default role is not a caller-visible not-found; it is a broken
// deployment and surfaces as a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrQuestNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrNoChange),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given error.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrQuestNotFound):
		return "Quest not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrQuestIDExists):
		return "ID in use"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already in use"

	case errors.Is(err, store.ErrNoChange):
		return "No changes were saved"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "Database failure"
	}
}
