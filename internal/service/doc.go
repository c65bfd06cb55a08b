// Package service contains the application use cases. Its center is the
// Facade, the single entry point through which every entity operation runs.
//
// The facade coordinates the repositories defined in internal/store and owns
// the rules that span more than one of them:
//
//   - email uniqueness across users
//   - references that must resolve (place owners, place amenities, review
//     authors and places)
//   - the id-list caches kept on users, places and amenities
//   - the cascade from a deleted place to its reviews
//
// Each mutating operation validates everything first and commits second, all
// under one facade-wide lock, so a failed operation never leaves partial
// state behind. After a commit the facade emits a domain event through an
// events.EventEmitter; emission failures are logged and otherwise ignored.
//
// Errors returned by the facade wrap the kinds declared in internal/domain
// (ErrValidation, ErrNotFound, ErrConflict) and are classified with errors.Is.
package service
