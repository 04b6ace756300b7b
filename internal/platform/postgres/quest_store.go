package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/questboard/questboard-api/internal/platform/logger"
	"github.com/questboard/questboard-api/internal/store"
)

// QuestStore implements the store.QuestStore interface using PostgreSQL
// as the storage backend.
type QuestStore struct {
	db           store.DBTX
	queryTimeout time.Duration
	logger       *slog.Logger
}

// NewQuestStore creates a new PostgreSQL implementation of the QuestStore
// interface. The connection (or transaction) is managed by the caller.
// If log is nil, the default logger is used.
func NewQuestStore(db store.DBTX, queryTimeout time.Duration, log *slog.Logger) *QuestStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &QuestStore{
		db:           db,
		queryTimeout: queryTimeout,
		logger:       log.With(slog.String("component", "quest_store")),
	}
}

var _ store.QuestStore = (*QuestStore)(nil)

func (s *QuestStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// GetAll implements store.QuestStore.GetAll.
func (s *QuestStore) GetAll(ctx context.Context) ([]*domain.Quest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		SELECT id, category_id, title, description, created_at, updated_at
		FROM quests
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list quests", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanQuests(rows)
}

// GetByID implements store.QuestStore.GetByID.
// Returns store.ErrQuestNotFound if the quest does not exist.
func (s *QuestStore) GetByID(ctx context.Context, id int64) (*domain.Quest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		SELECT id, category_id, title, description, created_at, updated_at
		FROM quests
		WHERE id = $1
	`

	var quest domain.Quest
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&quest.ID,
		&quest.CategoryID,
		&quest.Title,
		&quest.Description,
		&quest.CreatedAt,
		&quest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrQuestNotFound
		}
		log.Error("failed to get quest",
			slog.String("error", err.Error()),
			slog.Int64("quest_id", id))
		return nil, MapError(err)
	}

	return &quest, nil
}

// GetByCategory implements store.QuestStore.GetByCategory.
// Zero matches yields an empty slice, not an error.
func (s *QuestStore) GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Quest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		SELECT id, category_id, title, description, created_at, updated_at
		FROM quests
		WHERE category_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		log.Error("failed to list quests by category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanQuests(rows)
}

// Create implements store.QuestStore.Create.
// The caller-supplied ID is the primary key, so a concurrent create with the
// same ID surfaces as store.ErrQuestIDExists even when the service-level
// precondition raced.
func (s *QuestStore) Create(ctx context.Context, quest *domain.Quest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		INSERT INTO quests (id, category_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		quest.ID,
		quest.CategoryID,
		quest.Title,
		quest.Description,
		quest.CreatedAt,
		quest.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create quest",
			slog.String("error", err.Error()),
			slog.Int64("quest_id", quest.ID))
		return MapUniqueViolation(err, store.ErrQuestIDExists)
	}

	log.Info("quest created", slog.Int64("quest_id", quest.ID))
	return nil
}

// Update implements store.QuestStore.Update.
// The identity column is never part of the SET list.
func (s *QuestStore) Update(ctx context.Context, quest *domain.Quest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := `
		UPDATE quests
		SET category_id = $1, title = $2, description = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		quest.CategoryID,
		quest.Title,
		quest.Description,
		quest.UpdatedAt,
		quest.ID,
	)
	if err != nil {
		log.Error("failed to update quest",
			slog.String("error", err.Error()),
			slog.Int64("quest_id", quest.ID))
		return MapError(err)
	}

	return CheckRowsAffected(result, "quest")
}

// Delete implements store.QuestStore.Delete.
func (s *QuestStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `DELETE FROM quests WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete quest",
			slog.String("error", err.Error()),
			slog.Int64("quest_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, "quest")
}

func scanQuests(rows *sql.Rows) ([]*domain.Quest, error) {
	quests := make([]*domain.Quest, 0)
	for rows.Next() {
		var quest domain.Quest
		if err := rows.Scan(
			&quest.ID,
			&quest.CategoryID,
			&quest.Title,
			&quest.Description,
			&quest.CreatedAt,
			&quest.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		quests = append(quests, &quest)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return quests, nil
}
