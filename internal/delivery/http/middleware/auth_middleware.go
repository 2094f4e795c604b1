package middleware

import (
	"strings"

	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyCurrentUser is the echo.Context key under which the resolved identity is stored.
const keyCurrentUser = "current_user"

// AuthMiddleware turns bearer tokens into a resolved identity on the request
// context. Authorization failures flow to the central error handler as
// application errors.
type AuthMiddleware struct {
	authorizer usecase.Authorizer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authorizer usecase.Authorizer) *AuthMiddleware {
	return &AuthMiddleware{authorizer: authorizer}
}

// Authenticate requires a valid access token and stores the resolved identity
// on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		user, err := m.authorizer.ResolveRequired(c.Request().Context(), token)
		if err != nil {
			return err
		}

		SetCurrentUser(c, user)

		return next(c)
	}
}

// AuthenticateOptional resolves the identity when a usable token is present
// and treats everything else, including a malformed Authorization header, as
// an anonymous request. Endpoints behind it read CurrentUser and get nil for
// anonymous callers.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			token = ""
		}

		user, err := m.authorizer.ResolveOptional(c.Request().Context(), token)
		if err != nil {
			return err
		}

		if user != nil {
			SetCurrentUser(c, user)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory gating a route group on a role
// predicate. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(allowed entity.RolePredicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.authorizer.RequireRole(CurrentUser(c), allowed); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// CurrentUser returns the identity resolved by the auth middleware, or nil
// when the request is anonymous.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyCurrentUser).(*entity.User)

	return user
}

// SetCurrentUser stores a resolved identity on the context. Outside the auth
// middleware itself this is only useful to handler tests.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(keyCurrentUser, user)
}

// bearerToken extracts the token from the Authorization header. An absent
// header yields an empty token; a header in any shape other than "Bearer x"
// is rejected.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", nil
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", domainerrors.ErrUnauthenticated.WrapMessage("authorization header must be a bearer token")
	}

	return token, nil
}
