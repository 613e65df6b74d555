// Package usecase implements the business logic for the user feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrEmailRequired is returned when account creation is attempted without an email address.
	ErrEmailRequired = errors.New("user must have an email address")

	// ErrPasswordTooShort is returned when a password shorter than the minimum length is supplied.
	ErrPasswordTooShort = errors.New("password must be at least 5 characters long")

	// ErrInvalidCredentials is returned on any authentication failure.
	// The same error covers unknown email and wrong password so callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
)
