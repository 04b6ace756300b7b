package transfer_test

import (
	"testing"
	"time"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/questboard/questboard-api/internal/transfer"
	"github.com/stretchr/testify/assert"
)

func TestQuestMapper_ToEntity(t *testing.T) {
	t.Parallel()

	req := transfer.QuestRequest{
		ID:          7,
		CategoryID:  3,
		Title:       "X",
		Description: "desc",
	}

	quest := transfer.QuestMapper{}.ToEntity(req)

	assert.Equal(t, int64(7), quest.ID)
	assert.Equal(t, int64(3), quest.CategoryID)
	assert.Equal(t, "X", quest.Title)
	assert.Equal(t, "desc", quest.Description)
	assert.False(t, quest.CreatedAt.IsZero())
}

func TestQuestMapper_ToResponse(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	quest := &domain.Quest{
		ID:          7,
		CategoryID:  3,
		Title:       "X",
		Description: "desc",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := transfer.QuestMapper{}.ToResponse(quest)

	assert.Equal(t, transfer.QuestResponse{
		ID:          7,
		CategoryID:  3,
		Title:       "X",
		Description: "desc",
		CreatedAt:   now,
		UpdatedAt:   now,
	}, resp)
}

func TestQuestMapper_ApplyUpdate_PreservesIdentity(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	quest := &domain.Quest{
		ID:         7,
		CategoryID: 3,
		Title:      "old",
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	// The request tries to move the quest to a different identity.
	transfer.QuestMapper{}.ApplyUpdate(transfer.QuestRequest{
		ID:         99,
		CategoryID: 4,
		Title:      "new",
	}, quest)

	assert.Equal(t, int64(7), quest.ID, "identity must never change on update")
	assert.Equal(t, int64(4), quest.CategoryID)
	assert.Equal(t, "new", quest.Title)
	assert.Equal(t, created, quest.CreatedAt)
	assert.True(t, quest.UpdatedAt.After(created))
}
