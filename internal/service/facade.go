package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/events"
	"github.com/phrazzld/hbnb-api/internal/redact"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// Repositories groups the stores the facade coordinates. One set is built at
// process start and shared by every request.
type Repositories struct {
	Users     store.Repository[*domain.User]
	Places    store.Repository[*domain.Place]
	Amenities store.Repository[*domain.Amenity]
	Reviews   store.Repository[*domain.Review]
}

// NewInMemoryRepositories returns an empty in-memory repository for each entity type.
func NewInMemoryRepositories() Repositories {
	return Repositories{
		Users:     store.NewInMemoryRepository[*domain.User]("user", domain.ErrUserNotFound),
		Places:    store.NewInMemoryRepository[*domain.Place]("place", domain.ErrPlaceNotFound),
		Amenities: store.NewInMemoryRepository[*domain.Amenity]("amenity", domain.ErrAmenityNotFound),
		Reviews:   store.NewInMemoryRepository[*domain.Review]("review", domain.ErrReviewNotFound),
	}
}

// Option configures a Facade.
type Option func(*Facade)

// WithOneReviewPerUserPlace sets whether a user may review the same place
// more than once. It is enforced by default.
func WithOneReviewPerUserPlace(enforce bool) Option {
	return func(f *Facade) {
		f.onePerUserPlace = enforce
	}
}

// WithEmitter sets the emitter notified after every committed mutation.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(f *Facade) {
		f.emitter = emitter
	}
}

// Facade is the single entry point for every entity operation. It enforces
// the rules that span repositories: email uniqueness, references that must
// resolve, and the id-list caches kept on users, places and amenities.
//
// Every operation that reads and then writes holds the facade's write lock
// for its whole span and checks all of its preconditions before the first
// mutation, so a failed operation leaves no partial state behind. Entities
// returned by the facade are copies.
type Facade struct {
	mu sync.RWMutex

	users     store.Repository[*domain.User]
	places    store.Repository[*domain.Place]
	amenities store.Repository[*domain.Amenity]
	reviews   store.Repository[*domain.Review]

	hasher          auth.PasswordHasher
	emitter         events.EventEmitter
	onePerUserPlace bool
	logger          *slog.Logger
}

// NewFacade creates a Facade over repos. hasher is required; a nil logger
// falls back to slog.Default.
func NewFacade(repos Repositories, hasher auth.PasswordHasher, logger *slog.Logger, opts ...Option) *Facade {
	if hasher == nil {
		panic("password hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	f := &Facade{
		users:           repos.Users,
		places:          repos.Places,
		amenities:       repos.Amenities,
		reviews:         repos.Reviews,
		hasher:          hasher,
		onePerUserPlace: true,
		logger:          logger.With("component", "facade"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// emit announces a committed mutation. It must be called without the lock
// held. Failures are logged only: the change has already happened.
func (f *Facade) emit(ctx context.Context, eventType string, payload any) {
	if f.emitter == nil {
		return
	}

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		f.logger.Error("failed to build event",
			"error", redact.Error(err),
			"event_type", eventType)
		return
	}

	if err := f.emitter.EmitEvent(ctx, event); err != nil {
		f.logger.Warn("event handler failed",
			"error", redact.Error(err),
			"event_id", event.ID,
			"event_type", eventType)
	}
}
