package transfer

import (
	"time"

	"github.com/questboard/questboard-api/internal/domain"
)

// QuestRequest is the writable quest shape, used for both create and update.
// The ID field is only meaningful at creation time; updates never move a
// quest to a different identity no matter what the request carries.
type QuestRequest struct {
	ID          int64  `json:"id"          validate:"required,gt=0"`
	CategoryID  int64  `json:"category_id" validate:"required,gt=0"`
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=4000"`
}

// QuestResponse is the read shape of a quest.
type QuestResponse struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// QuestMapper translates between domain.Quest and its transfer shapes.
type QuestMapper struct{}

// ToEntity produces a new quest shell from the caller-supplied writable
// fields. It is used only at creation.
func (QuestMapper) ToEntity(req QuestRequest) *domain.Quest {
	now := time.Now().UTC()
	return &domain.Quest{
		ID:          req.ID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ToResponse converts a persisted quest to its read shape.
func (QuestMapper) ToResponse(quest *domain.Quest) QuestResponse {
	return QuestResponse{
		ID:          quest.ID,
		CategoryID:  quest.CategoryID,
		Title:       quest.Title,
		Description: quest.Description,
		CreatedAt:   quest.CreatedAt,
		UpdatedAt:   quest.UpdatedAt,
	}
}

// ApplyUpdate overwrites the mutable fields of an already-persisted quest
// in place. The identity is left untouched regardless of the request's ID.
func (QuestMapper) ApplyUpdate(req QuestRequest, quest *domain.Quest) {
	quest.CategoryID = req.CategoryID
	quest.Title = req.Title
	quest.Description = req.Description
	quest.UpdatedAt = time.Now().UTC()
}
