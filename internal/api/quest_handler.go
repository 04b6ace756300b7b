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

// QuestService defines the quest operations the handler depends on.
type QuestService interface {
	List(ctx context.Context) ([]transfer.QuestResponse, error)
	Get(ctx context.Context, id int64) (transfer.QuestResponse, error)
	SearchByCategory(ctx context.Context, categoryID int64) ([]transfer.QuestResponse, error)
	Create(ctx context.Context, req transfer.QuestRequest) (transfer.QuestResponse, error)
	Update(ctx context.Context, id int64, req transfer.QuestRequest) (transfer.QuestResponse, error)
	Delete(ctx context.Context, id int64) error
}

// QuestHandler handles quest-related HTTP requests.
type QuestHandler struct {
	service   QuestService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewQuestHandler creates a new QuestHandler.
func NewQuestHandler(service QuestService, log *slog.Logger) *QuestHandler {
	if log == nil {
		log = slog.Default()
	}

	return &QuestHandler{
		service:   service,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "quest_handler")),
	}
}

// List handles GET /quests requests.
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	quests, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quests)
}

// Get handles GET /quests/{id} requests.
func (h *QuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	quest, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quest)
}

// SearchByCategory handles GET /quests/category/{categoryId} requests.
// Zero matches is a 404; callers rely on that contract.
func (h *QuestHandler) SearchByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := h.pathID(w, r, "categoryId")
	if !ok {
		return
	}

	quests, err := h.service.SearchByCategory(r.Context(), categoryID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quests)
}

// Create handles POST /quests requests.
// Responds 201 with a Location header pointing at the created quest.
func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req transfer.QuestRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	quest, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/quests/%d", quest.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, quest)
}

// Update handles PUT /quests/{id} requests.
func (h *QuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req transfer.QuestRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	quest, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quest)
}

// Delete handles DELETE /quests/{id} requests.
func (h *QuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *QuestHandler) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID in path")
		return 0, false
	}
	return id, true
}

func (h *QuestHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
