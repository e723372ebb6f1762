package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already exists.
	// This is returned when attempting to create a user with an email that's
	// already in use, or to patch a user's email to one held by another user.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrMissingFields is returned when a create or replace is attempted
	// without both a name and an email.
	ErrMissingFields = fmt.Errorf("%w: name and email are required", ErrInvalidEntity)

	// ErrEmptyPatch is returned when a patch supplies no fields to update.
	ErrEmptyPatch = fmt.Errorf("%w: no fields to update", ErrInvalidEntity)

	// ErrEmptyQuery is returned when a search is attempted with an empty term.
	ErrEmptyQuery = fmt.Errorf("%w: search term is required", ErrInvalidEntity)

	// ErrConfirmationRequired is returned when a bulk delete is attempted
	// without the confirm=yes token.
	ErrConfirmationRequired = fmt.Errorf("%w: confirmation required, add ?confirm=yes", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
