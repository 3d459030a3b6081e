package service

import "context"

// Identity is the verified caller extracted from an ID token. Only what the
// identity provider asserts; the role lives in the profile document.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// TokenVerifier validates identity-provider ID tokens. Session management
// itself is delegated to the provider; this system only verifies.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}
