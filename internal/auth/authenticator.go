// Package auth provides the pluggable login gate and session tokens for the
// contractor ledger. Authentication is not part of the domain core: the
// application shell only needs something that can say yes or no to a
// credential pair and hand back a display name.
package auth

import (
	"context"
	"errors"
)

var (
	ErrEmptyCredentials   = errors.New("username and password must not be empty")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrUserExists         = errors.New("username already registered")
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping the placeholder accept-anything login
// for a real credential check without changing the application shell.
type Authenticator interface {
	// Authenticate verifies the credentials and returns the display name
	// to record on the session.
	Authenticate(ctx context.Context, username, password string) (string, error)

	// ValidateCredential checks whether a credential meets the
	// implementation's requirements before it is used or registered.
	ValidateCredential(credential string) error
}
