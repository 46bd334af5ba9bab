package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a required field (email or password) is empty.
	ErrInvalidInput = errors.New("email and password are required")

	// ErrEmailAlreadyExists is returned when attempting to register an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when an account cannot be found by email or ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned when email or password is wrong.
	// It is deliberately identical for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when a refresh session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
