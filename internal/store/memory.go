package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository implements Repository with a map plus an insertion-order
// index. It is safe for concurrent use; each call is atomic on its own, but
// sequences of calls are not.
type InMemoryRepository[T Entity] struct {
	mu       sync.RWMutex
	entities map[uuid.UUID]T
	order    []uuid.UUID
	entity   string
	notFound error
}

// Ensure InMemoryRepository implements the Repository interface
var _ Repository[Entity] = (*InMemoryRepository[Entity])(nil)

// NewInMemoryRepository creates an empty repository. entity names the stored
// type in error messages and notFound is returned for unknown IDs; it should
// wrap ErrNotFound.
func NewInMemoryRepository[T Entity](entity string, notFound error) *InMemoryRepository[T] {
	if notFound == nil {
		notFound = fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return &InMemoryRepository[T]{
		entities: make(map[uuid.UUID]T),
		entity:   entity,
		notFound: notFound,
	}
}

// Add implements Repository.Add
func (r *InMemoryRepository[T]) Add(entity T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.entities[id]; !exists {
		r.order = append(r.order, id)
	}
	r.entities[id] = entity
	return entity
}

// Get implements Repository.Get
func (r *InMemoryRepository[T]) Get(id uuid.UUID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.entities[id]
	if !ok {
		var zero T
		return zero, r.notFound
	}
	return entity, nil
}

// GetAll implements Repository.GetAll
func (r *InMemoryRepository[T]) GetAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entities[id])
	}
	return out
}

// GetByAttribute implements Repository.GetByAttribute
func (r *InMemoryRepository[T]) GetByAttribute(name string, value any) (T, error) {
	var known bool
	entity, err := r.FindFirst(func(e T) bool {
		v, ok := e.Attribute(name)
		if !ok {
			return false
		}
		known = true
		return v == value
	})
	if err != nil && !known && r.Len() > 0 {
		return entity, fmt.Errorf("%w: %s.%s: %w", r.notFound, r.entity, name, ErrUnknownAttribute)
	}
	return entity, err
}

// FindFirst implements Repository.FindFirst
func (r *InMemoryRepository[T]) FindFirst(match func(T) bool) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if entity := r.entities[id]; match(entity) {
			return entity, nil
		}
	}
	var zero T
	return zero, r.notFound
}

// Filter implements Repository.Filter
func (r *InMemoryRepository[T]) Filter(match func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []T
	for _, id := range r.order {
		if entity := r.entities[id]; match(entity) {
			out = append(out, entity)
		}
	}
	return out
}

// Update implements Repository.Update
func (r *InMemoryRepository[T]) Update(id uuid.UUID, patch Patch[T]) (T, error) {
	if err := patch.Validate(); err != nil {
		var zero T
		return zero, NewStoreError(r.entity, "update", "invalid patch", err)
	}
	return r.Modify(id, patch.Apply)
}

// Modify implements Repository.Modify
func (r *InMemoryRepository[T]) Modify(id uuid.UUID, fn func(T)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, ok := r.entities[id]
	if !ok {
		var zero T
		return zero, r.notFound
	}
	fn(entity)
	entity.Touch()
	return entity, nil
}

// Delete implements Repository.Delete
func (r *InMemoryRepository[T]) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entities[id]; !ok {
		return r.notFound
	}
	delete(r.entities, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists implements Repository.Exists
func (r *InMemoryRepository[T]) Exists(id uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entities[id]
	return ok
}

// Len implements Repository.Len
func (r *InMemoryRepository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entities)
}

// Clear implements Repository.Clear
func (r *InMemoryRepository[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities = make(map[uuid.UUID]T)
	r.order = nil
}
