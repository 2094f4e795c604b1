// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "newswire/internal/delivery/context"
	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/repository"
	"newswire/internal/domain/service"
	"newswire/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all
// dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new identity and issues its first token pair.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleSubscriber
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("unknown role " + role.String())
	}

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		IsVerified:   false,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		// Pre-check for a friendlier error path; the unique index on email is
		// the real guarantee under concurrent registration.
		_, err := uow.Users().FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return uow.Users().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	tokens, err := srv.issueTokenPair(newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID), slog.Any("role", role))

	return &usecase.RegisterOutput{User: newUser, Tokens: *tokens}, nil
}

// Login authenticates an identity by email and password and issues a token pair.
// The first successful login flips the verified flag inside the same unit of work.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		found, err := uow.Users().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so the endpoint does not leak
			// which emails are registered.
			return domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for login")
		}

		if !found.IsActive {
			return domainerrors.ErrForbidden.WrapMessage("account is deactivated")
		}

		ok, err := srv.hasher.Check(input.Password, found.PasswordHash)
		if err != nil {
			srv.log(ctx).Error("Stored password hash is corrupt", slog.Int64("userID", found.ID), slog.Any("error", err))

			return err
		}
		if !ok {
			return domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
		}

		if !found.IsVerified {
			if err := uow.Users().Update(ctx, found.ID, map[string]any{"is_verified": true}); err != nil {
				return errors.Wrap(err, "failed to mark user verified")
			}
			found.IsVerified = true
		}

		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	tokens, err := srv.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{User: user, Tokens: *tokens}, nil
}

// RefreshAccessToken mints a new access token from a valid refresh token.
// The role claim is re-read from storage so a promotion or demotion takes
// effect on the next refresh rather than at refresh-token expiry.
func (srv *identityService) RefreshAccessToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.Decode(refreshToken, service.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for token refresh")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is deactivated")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Int64("userID", user.ID))

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (srv *identityService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	err := srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		user, err := uow.Users().FindByID(ctx, input.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for password change")
		}

		ok, err := srv.hasher.Check(input.OldPassword, user.PasswordHash)
		if err != nil {
			srv.log(ctx).Error("Stored password hash is corrupt", slog.Int64("userID", user.ID), slog.Any("error", err))

			return err
		}
		if !ok {
			return domainerrors.ErrInvalidCredentials.WrapMessage("old password mismatch")
		}

		hashed, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		return uow.Users().Update(ctx, user.ID, map[string]any{"password_hash": hashed})
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Int64("userID", input.UserID))

	return nil
}

// Logout validates the refresh token structurally. Tokens are not stored, so
// there is nothing to revoke; a syntactically broken token is still rejected
// to keep client bugs visible.
func (srv *identityService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.Decode(refreshToken, service.TokenKindRefresh)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Logout acknowledged", slog.Int64("userID", claims.UserID))

	return nil
}

// GetUser loads one identity by its handle.
func (srv *identityService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("no such user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// ListUsers returns every identity.
func (srv *identityService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a partial update and returns the updated identity.
func (srv *identityService) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	fields := map[string]any{}
	if input.Email != nil {
		email := entity.NormalizeEmail(*input.Email)
		if email == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("email must not be empty")
		}
		fields["email"] = email
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrInvalidRole.WrapMessage("unknown role " + input.Role.String())
		}
		fields["role"] = input.Role.String()
	}
	if len(fields) == 0 {
		return srv.GetUser(ctx, id)
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Users().Update(ctx, id, fields); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("no such user")
			}

			return err
		}

		user, err := uow.Users().FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload user after update")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Int64("userID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", id))

	return updated, nil
}

// DeleteUser removes an identity.
func (srv *identityService) DeleteUser(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Users().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("no such user")
			}

			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User deletion failed", slog.Int64("userID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return nil
}

// EnsureSuperuser idempotently upserts the bootstrap superuser identity.
// Running it twice with the same credentials converges to the same record.
func (srv *identityService) EnsureSuperuser(ctx context.Context, email, password string) error {
	email = entity.NormalizeEmail(email)

	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash superuser password")
	}

	err = srv.txManager.Execute(ctx, func(uow repository.UnitOfWork) error {
		existing, err := uow.Users().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return uow.Users().Create(ctx, &entity.User{
				Email:        email,
				PasswordHash: hashed,
				IsActive:     true,
				IsVerified:   true,
				Role:         entity.RoleSuperuser,
			})
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up superuser")
		}

		return uow.Users().Update(ctx, existing.ID, map[string]any{
			"password_hash": hashed,
			"role":          entity.RoleSuperuser.String(),
			"is_active":     true,
			"is_verified":   true,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Superuser bootstrap failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to ensure superuser")
	}

	srv.log(ctx).Info("Superuser ensured", slog.String("email", email))

	return nil
}

func (srv *identityService) issueTokenPair(user *entity.User) (*usecase.TokenPair, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
