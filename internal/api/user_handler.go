package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/questboard/questboard-api/internal/api/shared"
	"github.com/questboard/questboard-api/internal/transfer"
)

// UserService defines the user operations the handler depends on.
type UserService interface {
	List(ctx context.Context) ([]transfer.UserResponse, error)
	Get(ctx context.Context, id int64) (transfer.UserResponse, error)
	Create(ctx context.Context, req transfer.CreateUpdateUserRequest) (transfer.UserResponse, error)
	Update(ctx context.Context, id int64, req transfer.CreateUpdateUserRequest) (transfer.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	service   UserService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service UserService, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		service:   service,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /users/{id} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Create handles POST /users requests. Registration requires a password;
// the created user carries the configured default role.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req transfer.CreateUpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Update handles PUT /users/{id} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req transfer.CreateUpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	user, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Delete handles DELETE /users/{id} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID in path")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
