// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/service"
	"fogon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	contextKeyUserID  = "userID"
	contextKeyRole    = "role"
	contextKeyProfile = "profile"
)

// AuthMiddleware verifies identity-provider ID tokens and resolves the
// caller's profile. The token asserts who the caller is; the profile
// document decides what they may do.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	profiles usecase.ProfileUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, profiles usecase.ProfileUsecase) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, profiles: profiles}
}

// Authenticate validates the bearer ID token and loads the caller's
// profile, provisioning it on first sign-in.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("missing Authorization header")
		}

		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("expected a Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), idToken)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		profile, err := m.profiles.EnsureProfile(c.Request().Context(), identity)
		if err != nil {
			return err
		}

		c.Set(contextKeyUserID, profile.UID)
		c.Set(contextKeyRole, profile.Role)
		c.Set(contextKeyProfile, profile)

		return next(c)
	}
}

// RequireRole is a middleware factory allowing only the listed roles. It
// must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := GetRole(c)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}

// RequireStaff allows any kitchen-board role. It must be used AFTER
// Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !GetRole(c).IsStaff() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// GetUserID returns the authenticated caller's uid, or "" outside
// Authenticate.
func GetUserID(c echo.Context) string {
	uid, _ := c.Get(contextKeyUserID).(string)

	return uid
}

// GetRole returns the authenticated caller's role. Unknown or missing roles
// come back zero-valued and fail every check downstream.
func GetRole(c echo.Context) entity.Role {
	role, _ := c.Get(contextKeyRole).(entity.Role)

	return role
}

// GetProfile returns the authenticated caller's profile document.
func GetProfile(c echo.Context) *entity.UserProfile {
	profile, _ := c.Get(contextKeyProfile).(*entity.UserProfile)

	return profile
}
