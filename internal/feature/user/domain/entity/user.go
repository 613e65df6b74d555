// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered account in the system.
// The email address is the identity key and is stored lowercase.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is normalized to lowercase on write.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name shown in the profile.
	Name string `gorm:"size:255"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords and is never serialized.
	Password string `gorm:"size:255;not null"`

	// IsActive marks whether the account may authenticate.
	IsActive bool `gorm:"not null;default:true"`

	// IsStaff grants access to administrative tooling.
	IsStaff bool `gorm:"not null;default:false"`

	// IsSuperuser grants all permissions implicitly.
	IsSuperuser bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
