package middleware

import (
	"net/http"
	"strings"

	deliverycontext "kasir/internal/delivery/context"
	"kasir/internal/delivery/http/response"
	"kasir/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests against the external identity
// provider. Every API route sits behind it; only the health check is open.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the authenticated
// subject on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		subject, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(string(deliverycontext.KeyUserID), subject)

		return next(c)
	}
}

// SubjectFromContext returns the authenticated subject stored by Authenticate.
func SubjectFromContext(c echo.Context) (string, error) {
	subject, ok := c.Get(string(deliverycontext.KeyUserID)).(string)
	if !ok || subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated subject")
	}

	return subject, nil
}
