package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Ensure Password implements Authenticator
var _ Authenticator = (*Password)(nil)

// Password implements Authenticator with an in-memory bcrypt credential
// register. It is the real-credential substitute for AcceptAll: register
// users up front, then authenticate against the stored hashes.
type Password struct {
	users map[string]passwordUser
}

type passwordUser struct {
	displayName string
	hash        []byte
}

// NewPassword returns an empty credential register.
func NewPassword() *Password {
	return &Password{users: make(map[string]passwordUser)}
}

// ValidateCredential checks minimum password requirements.
func (a *Password) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register stores a bcrypt hash for the given username.
func (a *Password) Register(username, displayName, password string) error {
	if username == "" {
		return ErrEmptyCredentials
	}
	if err := a.ValidateCredential(password); err != nil {
		return err
	}
	if _, exists := a.users[username]; exists {
		return ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	a.users[username] = passwordUser{displayName: displayName, hash: hash}
	return nil
}

// Authenticate compares the password against the registered hash.
func (a *Password) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, ok := a.users[username]
	if !ok {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.displayName, nil
}
