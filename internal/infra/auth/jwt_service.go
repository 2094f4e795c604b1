// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newswire/config"
	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/service"
	"newswire/internal/errors"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour

	claimKind = "kind"
	claimRole = "role"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. One process-wide HS256 signing key covers both token
// kinds; the "kind" claim keeps their validation paths non-interchangeable.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token == nil || cfg.Token.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := cfg.Token.AccessTTL
	if accessTTL == 0 {
		accessTTL = defaultAccessTTL
	}
	refreshTTL := cfg.Token.RefreshTTL
	if refreshTTL == 0 {
		refreshTTL = defaultRefreshTTL
	}

	return &jwtService{
		secret:     []byte(cfg.Token.Secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssueAccessToken creates a new short-lived access token carrying the user's role.
func (s *jwtService) IssueAccessToken(userID int64, role entity.Role) (string, error) {
	return s.issueToken(userID, role, service.TokenKindAccess, s.accessTTL)
}

// IssueRefreshToken creates a new long-lived refresh token.
func (s *jwtService) IssueRefreshToken(userID int64) (string, error) {
	return s.issueToken(userID, "", service.TokenKindRefresh, s.refreshTTL)
}

// Decode verifies the signature and expiry of a token string, then checks the
// claim set against the expected kind.
func (s *jwtService) Decode(tokenString string, expected service.TokenKind) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token past its expiry")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("unexpected claims type")
	}

	return s.claimsFromMap(mapClaims, expected)
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// issueToken is a private helper to create a JWT with specific claims.
func (s *jwtService) issueToken(userID int64, role entity.Role, kind service.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":     now.Unix(),                    // Issued At
		"exp":     now.Add(ttl).Unix(),           // Expiration Time
		claimKind: string(kind),                  // Kind of token (access or refresh)
	}
	// Only the access token carries the role, for stateless authorization.
	if role != "" {
		claims[claimRole] = role.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// claimsFromMap extracts and validates the custom claims. Wrong kind and an
// unparsable subject are malformed-token failures, distinct from signature and
// expiry problems.
func (s *jwtService) claimsFromMap(mapClaims jwt.MapClaims, expected service.TokenKind) (*service.Claims, error) {
	kindStr, _ := mapClaims[claimKind].(string)
	if service.TokenKind(kindStr) != expected {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("unexpected token kind " + strconv.Quote(kindStr))
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("missing subject claim")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject is not a valid user handle")
	}

	claims := &service.Claims{
		UserID: userID,
		Kind:   expected,
	}
	if roleStr, ok := mapClaims[claimRole].(string); ok {
		claims.Role = entity.Role(roleStr)
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}
	claims.Subject = sub

	return claims, nil
}
