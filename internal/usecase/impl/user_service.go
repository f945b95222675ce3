package impl

import (
	"context"
	"log/slog"

	deliverycontext "mahsoulna/internal/delivery/context"
	"mahsoulna/internal/domain/entity"
	domainerrors "mahsoulna/internal/domain/errors"
	"mahsoulna/internal/domain/repository"
	"mahsoulna/internal/domain/service"
	"mahsoulna/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	avatarRepo   repository.AvatarRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AvatarRepo   repository.AvatarRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		avatarRepo:   params.AvatarRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after hashing the supplied password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Gender:       input.Gender,
		DateOfBirth:  input.DateOfBirth,
		Enabled:      true,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credentials, rejects disabled accounts and issues an
// access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Password is checked before the enabled flag (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.Enabled {
		srv.log(ctx).Warn("Login attempt on disabled account", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// GetProfile retrieves the account of the authenticated user.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load profile")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// ChangePassword rotates the password after verifying the old one. The check
// and the write run in one transaction so a concurrent rotation cannot slip
// between them.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Int64("userID", input.UserID))

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for password change")
		}

		if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidOldPassword, "old password mismatch")
		}

		return userRepo.UpdatePassword(ctx, input.UserID, newHash)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to change password", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Debug("Password changed", slog.Int64("userID", input.UserID))

	return nil
}

// UpdateProfileImage replaces the stored profile picture.
func (srv *userService) UpdateProfileImage(ctx context.Context, input *usecase.UpdateProfileImageInput) error {
	if err := srv.userRepo.UpdateProfileImage(ctx, input.UserID, input.Image); err != nil {
		srv.log(ctx).Warn("Failed to update profile image", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update profile image")
	}

	return nil
}

// DisableAccount closes the account. The row and its order history stay.
func (srv *userService) DisableAccount(ctx context.Context, userID int64) error {
	srv.log(ctx).Info("Disabling account", slog.Int64("userID", userID))

	if err := srv.userRepo.Disable(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to disable account", slog.Int64("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to disable account")
	}

	return nil
}

// ListAvatars retrieves the stock profile pictures.
func (srv *userService) ListAvatars(ctx context.Context) ([]*entity.Avatar, error) {
	avatars, err := srv.avatarRepo.ListAvatars(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list avatars")
	}

	return avatars, nil
}
