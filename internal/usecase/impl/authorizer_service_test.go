package impl

import (
	"context"
	"testing"

	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/domain/repository"
	"newswire/internal/domain/service"
	mockRepo "newswire/internal/mocks/repository"
	mockSvc "newswire/internal/mocks/service"
	"newswire/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authorizerFixtures struct {
	authorizer   usecase.Authorizer
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestAuthorizer(t *testing.T) authorizerFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	authorizer := NewAuthorizerService(AuthorizerServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authorizerFixtures{
		authorizer:   authorizer,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestAuthorizer_ResolveRequired_Success(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Decode("token", service.TokenKindAccess).
		Return(&service.Claims{UserID: 42, Role: entity.RoleAuthor, Kind: service.TokenKindAccess}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(&entity.User{ID: 42, IsActive: true, Role: entity.RoleAuthor}, nil)

	user, err := fx.authorizer.ResolveRequired(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
}

func TestAuthorizer_ResolveRequired_MissingToken(t *testing.T) {
	fx := createTestAuthorizer(t)

	_, err := fx.authorizer.ResolveRequired(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthorizer_ResolveRequired_DecodeFailure(t *testing.T) {
	fx := createTestAuthorizer(t)

	fx.tokenService.EXPECT().
		Decode("expired", service.TokenKindAccess).
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("past expiry"))

	_, err := fx.authorizer.ResolveRequired(context.Background(), "expired")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthorizer_ResolveRequired_SubjectGone(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Decode("token", service.TokenKindAccess).
		Return(&service.Claims{UserID: 42, Kind: service.TokenKindAccess}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.authorizer.ResolveRequired(ctx, "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthorizer_ResolveRequired_DeactivatedSubject(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Decode("token", service.TokenKindAccess).
		Return(&service.Claims{UserID: 42, Kind: service.TokenKindAccess}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(&entity.User{ID: 42, IsActive: false}, nil)

	_, err := fx.authorizer.ResolveRequired(ctx, "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthorizer_ResolveOptional_EmptyTokenIsAnonymous(t *testing.T) {
	fx := createTestAuthorizer(t)

	user, err := fx.authorizer.ResolveOptional(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthorizer_ResolveOptional_BadTokenIsAnonymous(t *testing.T) {
	fx := createTestAuthorizer(t)

	fx.tokenService.EXPECT().
		Decode("garbage", service.TokenKindAccess).
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("bad signature"))

	user, err := fx.authorizer.ResolveOptional(context.Background(), "garbage")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthorizer_ResolveOptional_ExpiredTokenIsAnonymous(t *testing.T) {
	fx := createTestAuthorizer(t)

	fx.tokenService.EXPECT().
		Decode("expired", service.TokenKindAccess).
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("past expiry"))

	user, err := fx.authorizer.ResolveOptional(context.Background(), "expired")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthorizer_ResolveOptional_ValidTokenResolves(t *testing.T) {
	fx := createTestAuthorizer(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Decode("token", service.TokenKindAccess).
		Return(&service.Claims{UserID: 42, Role: entity.RoleAuthor, Kind: service.TokenKindAccess}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(&entity.User{ID: 42, IsActive: true, Role: entity.RoleAuthor}, nil)

	user, err := fx.authorizer.ResolveOptional(ctx, "token")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(42), user.ID)
}

func TestAuthorizer_RequireRole(t *testing.T) {
	fx := createTestAuthorizer(t)

	subscriber := &entity.User{ID: 1, Role: entity.RoleSubscriber}
	author := &entity.User{ID: 2, Role: entity.RoleAuthor}
	admin := &entity.User{ID: 3, Role: entity.RoleSuperuser}

	assert.NoError(t, fx.authorizer.RequireRole(author, entity.CanPublish))
	assert.NoError(t, fx.authorizer.RequireRole(admin, entity.CanPublish))
	assert.NoError(t, fx.authorizer.RequireRole(admin, entity.IsSuperuser))

	err := fx.authorizer.RequireRole(subscriber, entity.CanPublish)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.authorizer.RequireRole(author, entity.IsSuperuser)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.authorizer.RequireRole(nil, entity.IsSuperuser)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
