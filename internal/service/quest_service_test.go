package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/questboard/questboard-api/internal/service"
	"github.com/questboard/questboard-api/internal/store"
	"github.com/questboard/questboard-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func questReq(id, categoryID int64, title string) transfer.QuestRequest {
	return transfer.QuestRequest{
		ID:          id,
		CategoryID:  categoryID,
		Title:       title,
		Description: "desc",
	}
}

func TestQuestService_CreateAndGet(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, questReq(7, 3, "X"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, int64(3), created.CategoryID)
	assert.Equal(t, "X", created.Title)

	got, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestQuestService_Create_DuplicateID(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, questReq(7, 3, "first"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, questReq(7, 4, "second"))
	assert.ErrorIs(t, err, store.ErrQuestIDExists)

	require.Len(t, quests.quests, 1, "a rejected create must not change the store")
	assert.Equal(t, "first", quests.quests[7].Title)
}

func TestQuestService_Create_InvalidEntity(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())

	_, err := svc.Create(context.Background(), questReq(7, 3, ""))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.Zero(t, quests.createCalls, "invalid entities never reach the store")
}

func TestQuestService_Create_StoreFailureSurfaces(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	quests.failWith = errors.New("connection reset")
	svc := service.NewQuestService(quests, discardLogger())

	_, err := svc.Create(context.Background(), questReq(7, 3, "X"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
	assert.NotErrorIs(t, err, store.ErrDuplicate)
}

func TestQuestService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewQuestService(newFakeQuestStore(), discardLogger())

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrQuestNotFound)
}

func TestQuestService_List_EmptyStore(t *testing.T) {
	t.Parallel()

	svc := service.NewQuestService(newFakeQuestStore(), discardLogger())

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all, "an empty store lists as an empty slice, not nil")
}

func TestQuestService_Update(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, questReq(7, 3, "old"))
	require.NoError(t, err)

	// The request body carries a different ID; identity must win.
	updated, err := svc.Update(ctx, 7, questReq(99, 4, "new"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, int64(4), updated.CategoryID)
	assert.Equal(t, "new", updated.Title)

	_, ok := quests.quests[99]
	assert.False(t, ok, "update must never create a second identity")
	assert.Equal(t, "new", quests.quests[7].Title)
}

func TestQuestService_Update_NotFound(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())

	_, err := svc.Update(context.Background(), 42, questReq(42, 3, "X"))
	assert.ErrorIs(t, err, store.ErrQuestNotFound)
	assert.Zero(t, quests.updateCalls, "a missing quest short-circuits before the write")
}

func TestQuestService_Delete(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, questReq(7, 3, "X"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 7))
	assert.Empty(t, quests.quests)

	err = svc.Delete(ctx, 7)
	assert.ErrorIs(t, err, store.ErrQuestNotFound)
}

func TestQuestService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrQuestNotFound)
	assert.Zero(t, quests.deleteCalls, "a missing quest short-circuits before the delete")
}

func TestQuestService_SearchByCategory(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())
	ctx := context.Background()

	for _, req := range []transfer.QuestRequest{
		questReq(1, 3, "a"),
		questReq(2, 3, "b"),
		questReq(3, 4, "c"),
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	matches, err := svc.SearchByCategory(ctx, 3)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, int64(3), m.CategoryID)
	}
}

func TestQuestService_SearchByCategory_NoMatches(t *testing.T) {
	t.Parallel()

	quests := newFakeQuestStore()
	svc := service.NewQuestService(quests, discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, questReq(1, 3, "a"))
	require.NoError(t, err)

	_, err = svc.SearchByCategory(ctx, 9)
	assert.ErrorIs(t, err, store.ErrQuestNotFound)
}
