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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewIdentityService(IdentityServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return identityServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestIdentityService_Register_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)
	fx.tokenService.EXPECT().IssueAccessToken(int64(42), entity.RoleSubscriber).Return("access", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(int64(42)).Return("refresh", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "New@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, entity.RoleSubscriber, output.User.Role)
	assert.True(t, output.User.IsActive)
	assert.False(t, output.User.IsVerified)
	assert.Equal(t, "access", output.Tokens.AccessToken)
	assert.Equal(t, "refresh", output.Tokens.RefreshToken)
}

func TestIdentityService_Register_EmailTaken(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: 1, Email: "taken@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestIdentityService_Register_UnknownRole(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
		Role:     entity.Role("editor"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestIdentityService_Register_ElevatedRole(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "author@example.com").
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)
	fx.tokenService.EXPECT().IssueAccessToken(int64(7), entity.RoleAuthor).Return("access", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(int64(7)).Return("refresh", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "author@example.com",
		Password: "Password123!",
		Role:     entity.RoleAuthor,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAuthor, output.User.Role)
}

func TestIdentityService_Login_Success_MarksVerified(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:           42,
		Email:        "user@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
		IsVerified:   false,
		Role:         entity.RoleSubscriber,
	}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true, nil)
	txUserRepo.EXPECT().
		Update(ctx, int64(42), map[string]any{"is_verified": true}).
		Return(nil)
	fx.tokenService.EXPECT().IssueAccessToken(int64(42), entity.RoleSubscriber).Return("access", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(int64(42)).Return("refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "User@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.True(t, output.User.IsVerified)
	assert.Equal(t, "access", output.Tokens.AccessToken)
}

func TestIdentityService_Login_AlreadyVerified_SkipsUpdate(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:           42,
		Email:        "user@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
		IsVerified:   true,
		Role:         entity.RoleAuthor,
	}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true, nil)
	fx.tokenService.EXPECT().IssueAccessToken(int64(42), entity.RoleAuthor).Return("access", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(int64(42)).Return("refresh", nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	txUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdentityService_Login_UnknownEmail(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_Login_WrongPassword(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 42, Email: "user@example.com", PasswordHash: "hashed", IsActive: true}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_Login_CorruptHash(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 42, Email: "user@example.com", PasswordHash: "garbage", IsActive: true}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(stored, nil)
	fx.hasher.EXPECT().
		Check("Password123!", "garbage").
		Return(false, domainerrors.ErrCorruptCredential.WrapMessage("not a bcrypt hash"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCorruptCredential)
}

func TestIdentityService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 42, Email: "user@example.com", PasswordHash: "hashed", IsActive: false}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(stored, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestIdentityService_RefreshAccessToken_UsesCurrentRole(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Decode("refresh-token", service.TokenKindRefresh).
		Return(&service.Claims{UserID: 42, Kind: service.TokenKindRefresh}, nil)
	// The identity was promoted after the refresh token was issued; the new
	// access token must carry the stored role.
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(&entity.User{ID: 42, IsActive: true, Role: entity.RoleAuthor}, nil)
	fx.tokenService.EXPECT().IssueAccessToken(int64(42), entity.RoleAuthor).Return("new-access", nil)

	output, err := fx.service.RefreshAccessToken(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestIdentityService_RefreshAccessToken_SubjectGone(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Decode("refresh-token", service.TokenKindRefresh).
		Return(&service.Claims{UserID: 42, Kind: service.TokenKindRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RefreshAccessToken(ctx, "refresh-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityService_RefreshAccessToken_WrongKind(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokenService.EXPECT().
		Decode("access-token", service.TokenKindRefresh).
		Return(nil, domainerrors.ErrTokenMalformed.WrapMessage("kind mismatch"))

	_, err := fx.service.RefreshAccessToken(context.Background(), "access-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestIdentityService_ChangePassword_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 42, PasswordHash: "old-hash", IsActive: true}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(stored, nil)
	fx.hasher.EXPECT().Check("old-pass", "old-hash").Return(true, nil)
	fx.hasher.EXPECT().Hash("new-pass").Return("new-hash", nil)
	txUserRepo.EXPECT().
		Update(ctx, int64(42), map[string]any{"password_hash": "new-hash"}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:      42,
		OldPassword: "old-pass",
		NewPassword: "new-pass",
	})

	require.NoError(t, err)
}

func TestIdentityService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 42, PasswordHash: "old-hash", IsActive: true}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", "old-hash").Return(false, nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:      42,
		OldPassword: "wrong",
		NewPassword: "new-pass",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_Logout(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokenService.EXPECT().
		Decode("refresh-token", service.TokenKindRefresh).
		Return(&service.Claims{UserID: 42, Kind: service.TokenKindRefresh}, nil)

	require.NoError(t, fx.service.Logout(context.Background(), "refresh-token"))
}

func TestIdentityService_Logout_BrokenToken(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokenService.EXPECT().
		Decode("not-a-token", service.TokenKindRefresh).
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("bad signature"))

	err := fx.service.Logout(context.Background(), "not-a-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityService_EnsureSuperuser_CreatesWhenAbsent(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	fx.hasher.EXPECT().Hash("root-pass").Return("root-hash", nil)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "root@example.com").
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleSuperuser, user.Role)
			assert.True(t, user.IsActive)
			assert.True(t, user.IsVerified)
			assert.Equal(t, "root-hash", user.PasswordHash)
		}).
		Return(nil)

	require.NoError(t, fx.service.EnsureSuperuser(ctx, "Root@Example.com", "root-pass"))
}

func TestIdentityService_EnsureSuperuser_UpdatesWhenPresent(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 1, Email: "root@example.com", Role: entity.RoleSubscriber}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	fx.hasher.EXPECT().Hash("root-pass").Return("root-hash", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, "root@example.com").Return(existing, nil)
	txUserRepo.EXPECT().
		Update(ctx, int64(1), map[string]any{
			"password_hash": "root-hash",
			"role":          "superuser",
			"is_active":     true,
			"is_verified":   true,
		}).
		Return(nil)

	require.NoError(t, fx.service.EnsureSuperuser(ctx, "root@example.com", "root-pass"))
}

func TestIdentityService_UpdateUser_UnknownRole(t *testing.T) {
	fx := createTestIdentityService(t)

	bad := entity.Role("editor")
	_, err := fx.service.UpdateUser(context.Background(), 42, &usecase.UpdateUserInput{Role: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestIdentityService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	active := true
	txUserRepo.EXPECT().
		Update(ctx, int64(404), map[string]any{"is_active": true}).
		Return(repository.ErrUserNotFound)

	_, err := fx.service.UpdateUser(ctx, 404, &usecase.UpdateUserInput{IsActive: &active})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIdentityService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	uow.EXPECT().Users().Return(txUserRepo)
	passThroughExecute(fx.txManager, uow)

	txUserRepo.EXPECT().Delete(ctx, int64(404)).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
