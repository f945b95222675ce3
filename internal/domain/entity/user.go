// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a single customer account.
// Accounts are never hard-deleted; closing an account only flips Enabled to false.
type User struct {
	ID           int64     // Database-assigned identifier.
	Email        string    // The user's login identifier, unique across all accounts.
	PasswordHash string    // The bcrypt hash of the user's password. Never the plaintext.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Phone        string    // Contact phone number.
	Gender       string    // Free-text gender as provided at registration.
	DateOfBirth  string    // Date of birth as provided at registration (YYYY-MM-DD).
	Enabled      bool      // False once the account has been closed.
	ProfileImage []byte    // Optional profile picture, raw image bytes.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Avatar is a stock profile picture users can pick from.
type Avatar struct {
	ID    int64
	Image []byte
}
