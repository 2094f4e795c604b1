// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"newswire/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
// Role is entity.RoleSubscriber for self-registration; elevated roles come
// from superuser-gated routes and are validated against the closed enum.
type RegisterInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	UserID      int64
	OldPassword string
	NewPassword string
}

// UpdateUserInput defines a partial identity update. Nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string
	IsActive *bool
	Role     *entity.Role
}

// --- Output DTOs ---

// TokenPair carries one freshly minted access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterOutput returns the newly created identity and its first token pair.
type RegisterOutput struct {
	User   *entity.User
	Tokens TokenPair
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	User   *entity.User
	Tokens TokenPair
}

// RefreshOutput returns the new access token minted from a refresh token.
type RefreshOutput struct {
	AccessToken string `json:"access_token"`
}

// IdentityUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	// Register creates a new identity and issues its first token pair.
	// A taken email surfaces as domainerrors.ErrAlreadyExists.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates by email and password, marks the identity verified,
	// and issues a token pair. Unknown email and wrong password are both
	// domainerrors.ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshAccessToken mints a new access token from a valid refresh token.
	// No mutation happens, so no unit of work is opened.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// ChangePassword verifies the old password and stores a hash of the new one.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// Logout checks the refresh token for structural validity only. Issued
	// refresh tokens stay valid until natural expiry; discarding them is the
	// client's contract.
	Logout(ctx context.Context, refreshToken string) error

	// GetUser loads one identity by its handle.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// ListUsers returns every identity.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser applies a partial update and returns the updated identity.
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes an identity.
	DeleteUser(ctx context.Context, id int64) error

	// EnsureSuperuser idempotently upserts the bootstrap superuser identity.
	// It runs at process start, before the service accepts traffic.
	EnsureSuperuser(ctx context.Context, email, password string) error
}
