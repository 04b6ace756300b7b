package domain

import (
	"errors"
	"time"
)

// Quest validation errors
var (
	ErrInvalidQuestID    = errors.New("quest ID must be a positive integer")
	ErrInvalidCategoryID = errors.New("category ID must be a positive integer")
	ErrEmptyQuestTitle   = errors.New("quest title cannot be empty")
)

// Quest represents a posted quest that belongs to a category.
// The ID is supplied by the caller at creation time and is immutable
// once the quest has been persisted.
type Quest struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewQuest creates a new Quest with the given identity and descriptive fields
// and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewQuest(id, categoryID int64, title, description string) (*Quest, error) {
	now := time.Now().UTC()
	quest := &Quest{
		ID:          id,
		CategoryID:  categoryID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := quest.Validate(); err != nil {
		return nil, err
	}

	return quest, nil
}

// Validate checks if the Quest has valid data.
// Returns an error if any field fails validation.
func (q *Quest) Validate() error {
	if q.ID <= 0 {
		return ErrInvalidQuestID
	}

	if q.CategoryID <= 0 {
		return ErrInvalidCategoryID
	}

	if q.Title == "" {
		return ErrEmptyQuestTitle
	}

	return nil
}
