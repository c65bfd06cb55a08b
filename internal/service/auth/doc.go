// Package auth holds credential handling for the service layer. Passwords are
// hashed with bcrypt before they reach a repository and are never stored or
// returned in plaintext.
package auth
