// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	deliverycontext "inkspot/internal/delivery/context"
	"inkspot/internal/delivery/http/response"
	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"
	"inkspot/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer tokens and resolves them to live sessions.
// A token whose session is gone (logged out, restarted) is rejected even if
// its signature is still valid.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessionRepo: sessionRepo}
}

// Authenticate validates the JWT access token and loads its session onto
// the echo context.
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

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		session, err := m.sessionRepo.FindByID(c.Request().Context(), claims.SessionID)
		if err != nil {
			return response.Unauthorized(c, "SESSION_EXPIRED", "Session no longer exists")
		}

		c.Set(string(deliverycontext.KeySession), session)

		return next(c)
	}
}

// AuthenticateOptional resolves a session when a valid bearer token is
// present but lets anonymous requests through. Used on public reads that
// personalize their output for logged-in callers.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return next(c)
		}

		session, err := m.sessionRepo.FindByID(c.Request().Context(), claims.SessionID)
		if err != nil {
			return next(c)
		}

		c.Set(string(deliverycontext.KeySession), session)

		return next(c)
	}
}

// RequireRole rejects sessions that do not carry the required role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
			}
			if session.Role != requiredRole {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role", "")
			}

			return next(c)
		}
	}
}

// SessionFrom extracts the authenticated session placed by Authenticate.
func SessionFrom(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(deliverycontext.KeySession)).(*entity.Session)

	return session, ok
}
