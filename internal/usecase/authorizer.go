package usecase

import (
	"context"

	"newswire/internal/domain/entity"
)

// Authorizer turns bearer tokens into authenticated identities and enforces
// role requirements. It is consumed by the HTTP middleware.
type Authorizer interface {
	// ResolveRequired decodes an access token and loads the identity behind it.
	// An empty token yields domainerrors.ErrUnauthenticated; a decodable token
	// whose subject no longer exists yields domainerrors.ErrTokenInvalid.
	ResolveRequired(ctx context.Context, token string) (*entity.User, error)

	// ResolveOptional never fails. An absent token, an undecodable one, or a
	// dead subject all resolve to (nil, nil), so endpoints with public
	// variants degrade to anonymous instead of rejecting the request.
	ResolveOptional(ctx context.Context, token string) (*entity.User, error)

	// RequireRole checks the resolved identity against a role predicate and
	// returns domainerrors.ErrForbidden when it does not hold.
	RequireRole(user *entity.User, allowed entity.RolePredicate) error
}
