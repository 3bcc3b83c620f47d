package service

import "context"

// TokenVerifier validates a bearer token issued by the external identity
// provider and extracts the authenticated subject. Key material is fetched
// remotely from the provider's JWKS endpoint and refreshed in the background.
type TokenVerifier interface {
	// Verify parses and validates the token, returning the subject claim.
	Verify(ctx context.Context, token string) (subject string, err error)
}
