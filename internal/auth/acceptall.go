package auth

import "context"

// Ensure AcceptAll implements Authenticator
var _ Authenticator = AcceptAll{}

// AcceptAll accepts any non-empty credential pair and uses the username as
// the display name. It reproduces the placeholder login of a single-user
// local tool; nothing it guards is secret.
type AcceptAll struct{}

// ValidateCredential rejects only the empty credential.
func (AcceptAll) ValidateCredential(credential string) error {
	if credential == "" {
		return ErrEmptyCredentials
	}
	return nil
}

// Authenticate succeeds for any non-empty username/password pair.
func (AcceptAll) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}
	return username, nil
}
