// Package testutils provides helpers shared by tests across packages: loggers
// that discard or capture output, and small value helpers.
package testutils
