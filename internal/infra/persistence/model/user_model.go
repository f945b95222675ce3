package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are database-assigned bigints.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(30)"`
	Gender       string `gorm:"type:varchar(20)"`
	DateOfBirth  string `gorm:"type:varchar(20)"`
	Enabled      bool   `gorm:"not null;default:true"`
	ProfileImage []byte `gorm:"type:bytea"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AvatarModel mirrors the 'avatars' table of stock profile pictures.
type AvatarModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Image []byte `gorm:"column:avatar;type:bytea;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AvatarModel) TableName() string {
	return "avatars"
}
