// Package domain contains the marketplace entities (users, places,
// amenities and reviews), their validation rules and the error kinds shared
// by every layer above it. It has no knowledge of storage or transport.
package domain
