package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/questboard/questboard-api/internal/store"
)

// EntityStore is the minimal persistence contract the generic resource
// service needs. The concrete store interfaces in internal/store satisfy it
// for their entity type.
type EntityStore[E any] interface {
	GetAll(ctx context.Context) ([]*E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, entity *E) error
	Update(ctx context.Context, entity *E) error
	Delete(ctx context.Context, id int64) error
}

// Mapper translates between the persisted entity shape and the wire-transfer
// shapes of one resource. C is the writable (create/update) shape, R the
// read shape. Implementations must be pure and I/O-free.
type Mapper[E, C, R any] interface {
	// ToEntity produces a new entity shell from caller-supplied writable
	// fields. Used only at creation.
	ToEntity(req C) *E

	// ToResponse converts an entity to its read shape. Total.
	ToResponse(entity *E) R

	// ApplyUpdate overwrites the mutable fields of an existing entity in
	// place, leaving identity and non-writable fields untouched.
	ApplyUpdate(req C, entity *E)
}

// Hook runs a resource-specific step against an entity, e.g. attaching the
// default role or hashing a password before persistence.
type Hook[E any] func(ctx context.Context, entity *E) error

// Precondition checks a create request before any entity is built, e.g. the
// identity or natural-key uniqueness check. It returns a duplicate sentinel
// to reject the request, or nil to let creation proceed.
type Precondition[C any] func(ctx context.Context, req C) error

// Resource is the generic CRUD service shared by every resource type.
// Each operation is atomic end-to-end and holds no state across requests.
type Resource[E, C, R any] struct {
	name         string
	store        EntityStore[E]
	mapper       Mapper[E, C, R]
	validate     func(*E) error
	checkCreate  Precondition[C]
	beforeCreate Hook[E]
	beforeUpdate Hook[E]
	logger       *slog.Logger
}

// ResourceOption customizes a Resource at construction time.
type ResourceOption[E, C, R any] func(*Resource[E, C, R])

// WithCreatePrecondition installs the uniqueness check run before creation.
func WithCreatePrecondition[E, C, R any](p Precondition[C]) ResourceOption[E, C, R] {
	return func(r *Resource[E, C, R]) { r.checkCreate = p }
}

// WithBeforeCreate installs a hook run on the mapped entity before it is
// persisted for the first time.
func WithBeforeCreate[E, C, R any](h Hook[E]) ResourceOption[E, C, R] {
	return func(r *Resource[E, C, R]) { r.beforeCreate = h }
}

// WithBeforeUpdate installs a hook run on the updated entity before it is
// written back.
func WithBeforeUpdate[E, C, R any](h Hook[E]) ResourceOption[E, C, R] {
	return func(r *Resource[E, C, R]) { r.beforeUpdate = h }
}

// NewResource creates a generic resource service for one entity type.
// name is used for logging only. validate may be nil when the entity needs
// no domain validation.
func NewResource[E, C, R any](
	name string,
	entityStore EntityStore[E],
	mapper Mapper[E, C, R],
	validate func(*E) error,
	logger *slog.Logger,
	opts ...ResourceOption[E, C, R],
) *Resource[E, C, R] {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Resource[E, C, R]{
		name:     name,
		store:    entityStore,
		mapper:   mapper,
		validate: validate,
		logger:   logger.With(slog.String("resource", name)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns the read shape of every persisted entity.
// The result is an empty slice, not an error, when nothing exists.
func (s *Resource[E, C, R]) List(ctx context.Context) ([]R, error) {
	entities, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}

	responses := make([]R, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, s.mapper.ToResponse(entity))
	}
	return responses, nil
}

// Get returns the read shape of the entity with the given ID.
// Returns the store's not-found sentinel when no entity matches.
func (s *Resource[E, C, R]) Get(ctx context.Context, id int64) (R, error) {
	var zero R

	entity, err := s.store.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.mapper.ToResponse(entity), nil
}

// Create builds a new entity from the writable request shape and persists
// it. The uniqueness precondition and the before-create hook run first; a
// failure in either aborts creation without touching the store.
func (s *Resource[E, C, R]) Create(ctx context.Context, req C) (R, error) {
	var zero R

	if s.checkCreate != nil {
		if err := s.checkCreate(ctx, req); err != nil {
			return zero, err
		}
	}

	entity := s.mapper.ToEntity(req)

	if s.validate != nil {
		if err := s.validate(entity); err != nil {
			return zero, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	if s.beforeCreate != nil {
		if err := s.beforeCreate(ctx, entity); err != nil {
			return zero, fmt.Errorf("create %s: %w", s.name, err)
		}
	}

	if err := s.store.Create(ctx, entity); err != nil {
		return zero, err
	}

	s.logger.Info("entity created", slog.String("operation", "create"))
	return s.mapper.ToResponse(entity), nil
}

// Update applies the writable request shape to the entity at the given ID
// and persists the result. A missing entity short-circuits with the store's
// not-found sentinel before any mapping happens; the write itself can still
// report store.ErrNoChange when the row vanished concurrently.
func (s *Resource[E, C, R]) Update(ctx context.Context, id int64, req C) (R, error) {
	var zero R

	entity, err := s.store.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	s.mapper.ApplyUpdate(req, entity)

	if s.validate != nil {
		if err := s.validate(entity); err != nil {
			return zero, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(ctx, entity); err != nil {
			return zero, fmt.Errorf("update %s: %w", s.name, err)
		}
	}

	if err := s.store.Update(ctx, entity); err != nil {
		if errors.Is(err, store.ErrNoChange) {
			s.logger.Warn("update persisted no change",
				slog.String("operation", "update"),
				slog.Int64("id", id))
		}
		return zero, err
	}

	return s.mapper.ToResponse(entity), nil
}

// Delete removes the entity at the given ID.
// A missing entity returns the store's not-found sentinel without invoking
// the delete; a concurrent removal surfaces as store.ErrNoChange.
func (s *Resource[E, C, R]) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoChange) {
			s.logger.Warn("delete persisted no change",
				slog.String("operation", "delete"),
				slog.Int64("id", id))
		}
		return err
	}

	s.logger.Info("entity deleted",
		slog.String("operation", "delete"),
		slog.Int64("id", id))
	return nil
}
