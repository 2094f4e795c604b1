package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/config"
	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/service"
	"newswire/internal/errors"
)

const testSecret = "unit-test-signing-secret"

func newTestTokenService(t *testing.T, accessTTL, refreshTTL time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{
		Token: &config.TokenConfig{
			Secret:     testSecret,
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Token: &config.TokenConfig{}})
	assert.Error(t, err)
}

func TestJWTService_AccessToken_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Minute, time.Hour)

	token, err := svc.IssueAccessToken(42, entity.RoleAuthor)
	require.NoError(t, err)

	claims, err := svc.Decode(token, service.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entity.RoleAuthor, claims.Role)
	assert.Equal(t, service.TokenKindAccess, claims.Kind)
}

func TestJWTService_RefreshToken_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Minute, time.Hour)

	token, err := svc.IssueRefreshToken(7)
	require.NoError(t, err)

	claims, err := svc.Decode(token, service.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Empty(t, claims.Role, "refresh tokens carry no role")
}

func TestJWTService_Decode_KindMismatch(t *testing.T) {
	svc := newTestTokenService(t, time.Minute, time.Hour)

	accessToken, err := svc.IssueAccessToken(1, entity.RoleSubscriber)
	require.NoError(t, err)

	_, err = svc.Decode(accessToken, service.TokenKindRefresh)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_Decode_Expired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute, time.Hour)

	token, err := svc.IssueAccessToken(1, entity.RoleSubscriber)
	require.NoError(t, err)

	_, err = svc.Decode(token, service.TokenKindAccess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_Decode_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t, time.Minute, time.Hour)

	token, err := svc.IssueAccessToken(1, entity.RoleSubscriber)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.Decode(tampered, service.TokenKindAccess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_Decode_WrongKey(t *testing.T) {
	svc := newTestTokenService(t, time.Minute, time.Hour)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "1",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"kind": "access",
	})
	signed, err := foreign.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.Decode(signed, service.TokenKindAccess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_Decode_NonNumericSubject(t *testing.T) {
	svc := newTestTokenService(t, time.Minute, time.Hour)

	crafted := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "not-a-number",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"kind": "access",
	})
	signed, err := crafted.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Decode(signed, service.TokenKindAccess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_Durations(t *testing.T) {
	svc := newTestTokenService(t, 5*time.Minute, 48*time.Hour)

	assert.Equal(t, 5*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, 48*time.Hour, svc.RefreshTokenDuration())
}
