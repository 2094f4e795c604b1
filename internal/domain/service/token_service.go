package service

import (
	"time"

	"newswire/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind discriminates the two claim-set kinds. Access and refresh tokens
// are structurally similar, so the kind must be checked explicitly on decode.
type TokenKind string

const (
	// TokenKindAccess is a short-lived credential authorizing a single
	// request's identity resolution.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is a long-lived credential used solely to mint new
	// access tokens.
	TokenKindRefresh TokenKind = "refresh"
)

// Claims defines the custom claims carried by the service's JWTs.
type Claims struct {
	UserID int64
	Role   entity.Role // Only populated on access tokens.
	Kind   TokenKind
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed,
// time-bounded tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// IssueAccessToken creates a short-lived access token carrying the user's
	// role for stateless authorization.
	IssueAccessToken(userID int64, role entity.Role) (string, error)

	// IssueRefreshToken creates a long-lived refresh token for the user.
	IssueRefreshToken(userID int64) (string, error)

	// Decode verifies signature, expiry, kind, and subject of a token.
	// Failure modes, all "unauthenticated" to the caller:
	//   - domainerrors.ErrTokenExpired when the token is past its expiry
	//   - domainerrors.ErrTokenMalformed on wrong kind or unparsable subject
	//   - domainerrors.ErrTokenInvalid on any other verification failure
	Decode(tokenString string, expected TokenKind) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
