package store

import (
	"context"

	"github.com/questboard/questboard-api/internal/domain"
)

// QuestStore defines the interface for quest data persistence.
type QuestStore interface {
	// GetAll retrieves every persisted quest.
	// Returns an empty slice if no quests exist.
	GetAll(ctx context.Context) ([]*domain.Quest, error)

	// GetByID retrieves a quest by its unique ID.
	// Returns ErrQuestNotFound if the quest does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Quest, error)

	// GetByCategory retrieves every quest belonging to the given category.
	// Returns an empty slice when nothing matches; a missing category is not
	// distinguished from zero matches at this layer.
	GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Quest, error)

	// Create saves a new quest to the store.
	// The quest ID is supplied by the caller and must be unique;
	// returns ErrQuestIDExists if it is already taken.
	Create(ctx context.Context, quest *domain.Quest) error

	// Update modifies an existing quest's mutable fields.
	// Returns ErrNoChange if no row was modified, which indicates the quest
	// disappeared between the existence check and the write.
	Update(ctx context.Context, quest *domain.Quest) error

	// Delete removes a quest from the store by its ID.
	// Returns ErrNoChange if no row was deleted.
	Delete(ctx context.Context, id int64) error
}
