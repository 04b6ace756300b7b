package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/questboard/questboard-api/internal/store"
	"github.com/questboard/questboard-api/internal/transfer"
)

// QuestService enforces the business rules for the quest resource.
// Quest identities are caller-supplied, so creation rejects an ID that is
// already in use.
type QuestService struct {
	*Resource[domain.Quest, transfer.QuestRequest, transfer.QuestResponse]

	quests store.QuestStore
	mapper transfer.QuestMapper
	logger *slog.Logger
}

// NewQuestService creates the quest resource service.
func NewQuestService(quests store.QuestStore, logger *slog.Logger) *QuestService {
	if logger == nil {
		logger = slog.Default()
	}

	mapper := transfer.QuestMapper{}

	checkIDFree := func(ctx context.Context, req transfer.QuestRequest) error {
		_, err := quests.GetByID(ctx, req.ID)
		switch {
		case err == nil:
			return fmt.Errorf("quest %d: %w", req.ID, store.ErrQuestIDExists)
		case errors.Is(err, store.ErrNotFound):
			return nil
		default:
			return err
		}
	}

	return &QuestService{
		Resource: NewResource(
			"quest",
			quests,
			mapper,
			(*domain.Quest).Validate,
			logger,
			WithCreatePrecondition[domain.Quest, transfer.QuestRequest, transfer.QuestResponse](checkIDFree),
		),
		quests: quests,
		mapper: mapper,
		logger: logger.With(slog.String("component", "quest_service")),
	}
}

// SearchByCategory returns every quest in the given category.
// Zero matches is deliberately a not-found condition, not an empty success;
// callers depend on that contract.
func (s *QuestService) SearchByCategory(ctx context.Context, categoryID int64) ([]transfer.QuestResponse, error) {
	quests, err := s.quests.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("search quests by category %d: %w", categoryID, err)
	}

	if len(quests) == 0 {
		s.logger.Debug("no quests in category", slog.Int64("category_id", categoryID))
		return nil, store.ErrQuestNotFound
	}

	responses := make([]transfer.QuestResponse, 0, len(quests))
	for _, quest := range quests {
		responses = append(responses, s.mapper.ToResponse(quest))
	}
	return responses, nil
}
