package store

import (
	"github.com/google/uuid"
)

// Entity is implemented by every type a Repository can hold.
type Entity interface {
	// GetID returns the entity's identifier. It must be set before Add.
	GetID() uuid.UUID

	// Touch refreshes the entity's update timestamp.
	Touch()

	// Attribute returns the value of a lookup field, or false if the entity
	// does not expose a field with that name.
	Attribute(name string) (any, bool)
}

// Patch is a typed partial update for an entity of type T.
type Patch[T any] interface {
	// Validate checks every field the patch would change.
	Validate() error

	// Apply copies the patch's provided fields onto the entity.
	Apply(entity T)
}

// Repository is a keyed store for one entity type.
//
// Entities returned by a Repository are the stored values themselves;
// callers that hand them out further should copy them first.
type Repository[T Entity] interface {
	// Add inserts entity under its ID and returns it. An existing entity with
	// the same ID is silently replaced.
	Add(entity T) T

	// Get returns the entity with the given ID, or the repository's not found
	// error.
	Get(id uuid.UUID) (T, error)

	// GetAll returns every entity in insertion order.
	GetAll() []T

	// GetByAttribute returns the first entity, in insertion order, whose
	// attribute name equals value.
	GetByAttribute(name string, value any) (T, error)

	// FindFirst returns the first entity, in insertion order, matching the predicate.
	FindFirst(match func(T) bool) (T, error)

	// Filter returns every entity matching the predicate, in insertion order.
	Filter(match func(T) bool) []T

	// Update validates patch and applies it to the stored entity, refreshing
	// its update timestamp. Nothing changes when validation fails.
	Update(id uuid.UUID, patch Patch[T]) (T, error)

	// Modify runs fn against the stored entity and refreshes its update
	// timestamp. It is used for bookkeeping fields that no patch exposes.
	Modify(id uuid.UUID, fn func(T)) (T, error)

	// Delete removes the entity. Deleting a missing ID returns the not found
	// error and has no other effect.
	Delete(id uuid.UUID) error

	// Exists reports whether an entity with the given ID is stored.
	Exists(id uuid.UUID) bool

	// Len returns the number of stored entities.
	Len() int

	// Clear removes every entity.
	Clear()
}
