// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"log/slog"

	"kasir/config"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/service"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwksVerifier validates bearer tokens against the identity provider's
// remotely fetched JSON Web Key Set. The key set is cached and refreshed in
// the background by keyfunc.
type jwksVerifier struct {
	keyfunc      jwt.Keyfunc
	validMethods []string
	logger       *slog.Logger
}

// NewJWKSVerifier is the constructor for jwksVerifier. It fetches the key set
// once at startup so a misconfigured JWKS URL fails fast.
func NewJWKSVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.JWKSURL == "" {
		return nil, errors.New("auth.jwksUrl must be provided")
	}

	kf, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.Auth.JWKSURL})
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "failed to fetch JWKS from %s: %v", cfg.Auth.JWKSURL, err)
	}

	logger.Info("JWKS fetched", slog.String("url", cfg.Auth.JWKSURL))

	return &jwksVerifier{
		keyfunc:      kf.Keyfunc,
		validMethods: []string{"RS256"},
		logger:       logger,
	}, nil
}

// Verify parses and validates the token, returning the subject claim.
func (v *jwksVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, v.keyfunc,
		jwt.WithValidMethods(v.validMethods),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", errors.Wrap(err, "token validation failed")
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("subject claim missing from token")
	}

	return subject, nil
}
