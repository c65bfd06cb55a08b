// Package events provides types and interfaces for announcing changes to
// stored entities.
//
// The service layer emits an Event after every committed mutation. Handlers
// registered on an EventEmitter observe those events without the service
// knowing about them; the server uses this for audit logging and metrics.
//
// The primary components are:
// - Event: A typed change notification with a JSON payload
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
