package impl

import (
	"context"
	"testing"

	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	mockRepo "mahsoulna/internal/mocks/repository"
	mockService "mahsoulna/internal/mocks/service"
	"mahsoulna/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	avatarRepo   *mockRepo.MockAvatarRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	avatarRepo := mockRepo.NewMockAvatarRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(userRepo).Maybe()

	service := &userService{
		txManager:    &fakeTxManager{factory: factory},
		userRepo:     userRepo,
		avatarRepo:   avatarRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       discardLogger(),
	}

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		avatarRepo:   avatarRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:       "nour@example.com",
		Password:    "s3cret-pass",
		FirstName:   "Nour",
		LastName:    "Haddad",
		Phone:       "+96170123456",
		Gender:      "female",
		DateOfBirth: "1995-04-17",
	}

	fx.hasher.On("Hash", input.Password).Return("$2a$10$hash", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 11

			assert.Equal(t, input.Email, user.Email)
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			assert.True(t, user.Enabled)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.User.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "taken@example.com", Password: "pw"}

	fx.hasher.On("Hash", input.Password).Return("$2a$10$hash", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           11,
		Email:        "nour@example.com",
		PasswordHash: "$2a$10$hash",
		Enabled:      true,
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "s3cret-pass", user.PasswordHash).Return(true)
	fx.tokenService.On("GenerateToken", user.ID, user.Email).Return("token-abc", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 11, Email: "nour@example.com", PasswordHash: "$2a$10$hash", Enabled: true}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 11, Email: "closed@example.com", PasswordHash: "$2a$10$hash", Enabled: false}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "s3cret-pass", user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret-pass"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
	fx.tokenService.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 11, PasswordHash: "$2a$10$old"}

	fx.hasher.On("Hash", "new-pass").Return("$2a$10$new", nil)
	fx.userRepo.On("FindByID", ctx, int64(11)).Return(user, nil)
	fx.hasher.On("Check", "old-pass", "$2a$10$old").Return(true)
	fx.userRepo.On("UpdatePassword", ctx, int64(11), "$2a$10$new").Return(nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:      11,
		OldPassword: "old-pass",
		NewPassword: "new-pass",
	})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 11, PasswordHash: "$2a$10$old"}

	fx.hasher.On("Hash", "new-pass").Return("$2a$10$new", nil)
	fx.userRepo.On("FindByID", ctx, int64(11)).Return(user, nil)
	fx.hasher.On("Check", "bad-old", "$2a$10$old").Return(false)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:      11,
		OldPassword: "bad-old",
		NewPassword: "new-pass",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOldPassword)
	fx.userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_DisableAccount_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("Disable", ctx, int64(11)).Return(nil)

	require.NoError(t, fx.service.DisableAccount(ctx, 11))
}

func TestUserService_ListAvatars_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	avatars := []*entity.Avatar{{ID: 1, Image: []byte{0x89, 'P', 'N', 'G'}}}

	fx.avatarRepo.On("ListAvatars", ctx).Return(avatars, nil)

	got, err := fx.service.ListAvatars(ctx)

	require.NoError(t, err)
	assert.Equal(t, avatars, got)
}
