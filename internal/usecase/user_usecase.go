// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mahsoulna/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	Gender      string
	DateOfBirth string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to rotate a password.
// The old password must match the stored hash before the new one is set.
type ChangePasswordInput struct {
	UserID      int64
	OldPassword string
	NewPassword string
}

// UpdateProfileImageInput defines the data required to replace a profile picture.
type UpdateProfileImageInput struct {
	UserID int64
	Image  []byte
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the access token and account after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	UpdateProfileImage(ctx context.Context, input *UpdateProfileImageInput) error
	DisableAccount(ctx context.Context, userID int64) error
	ListAvatars(ctx context.Context) ([]*entity.Avatar, error)
}
