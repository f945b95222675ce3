// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mahsoulna/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// UpdateProfileImage replaces the stored profile image for a user.
	UpdateProfileImage(ctx context.Context, id int64, image []byte) error

	// Disable soft-deletes an account by clearing its enabled flag.
	// Accounts are never hard-deleted.
	Disable(ctx context.Context, id int64) error
}

// AvatarRepository lists the stock profile pictures users can pick from.
type AvatarRepository interface {
	// ListAvatars retrieves every stock avatar.
	ListAvatars(ctx context.Context) ([]*entity.Avatar, error)
}
