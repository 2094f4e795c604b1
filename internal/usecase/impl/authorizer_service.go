package impl

import (
	"context"
	"log/slog"

	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/repository"
	"newswire/internal/domain/service"
	"newswire/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authorizerService implements the Authorizer interface on top of the token
// service and the user repository. Tokens are stateless, so the repository
// read is the only storage touch per request.
type authorizerService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthorizerServiceParams holds dependencies for authorizerService, injected by Fx.
type AuthorizerServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthorizerService is the constructor for authorizerService.
func NewAuthorizerService(params AuthorizerServiceParams) usecase.Authorizer {
	return &authorizerService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// ResolveRequired decodes an access token and loads the identity behind it.
func (srv *authorizerService) ResolveRequired(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing bearer token")
	}

	claims, err := srv.tokenService.Decode(token, service.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Valid signature over a deleted subject. Deliberately not 404: the
		// caller presented a credential, and that credential is dead.
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is deactivated")
	}

	return user, nil
}

// ResolveOptional never fails: an absent, invalid, or expired token all
// resolve to an anonymous viewer, and the endpoint narrows visibility instead
// of rejecting the request. Failures are logged so a misbehaving client is
// still visible.
func (srv *authorizerService) ResolveOptional(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}

	user, err := srv.ResolveRequired(ctx, token)
	if err != nil {
		srv.logger.Debug("Optional credential rejected, continuing as anonymous", slog.Any("error", err))

		return nil, nil
	}

	return user, nil
}

// RequireRole checks the resolved identity against a role predicate.
func (srv *authorizerService) RequireRole(user *entity.User, allowed entity.RolePredicate) error {
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("role check on anonymous caller")
	}

	if !allowed(user.Role) {
		srv.logger.Debug("Role check rejected", slog.Int64("userID", user.ID), slog.Any("role", user.Role))

		return domainerrors.ErrForbidden.WrapMessage("role " + user.Role.String() + " is not allowed here")
	}

	return nil
}
