// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account represents a registered journal owner.
// It contains authentication credentials and metadata for account management.
type Account struct {
	// ID is the unique identifier for the account. Assigned by the store,
	// immutable, never reused.
	ID uint `gorm:"primaryKey"`

	// Email is the account's email address used for authentication.
	// It must be unique across all accounts; uniqueness is enforced by the
	// storage layer's unique index, not by application-level locking.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the account's password.
	// This must never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}
