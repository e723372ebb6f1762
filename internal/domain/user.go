package domain

import (
	"errors"
	"strings"
)

// Common validation errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooShort = errors.New("name must be at least 2 characters long")
	ErrNameTooLong  = errors.New("name must be at most 50 characters long")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
)

// User represents a single record in the user collection.
// IDs are assigned by the store from a monotonic counter and are never
// reused within a process lifetime, even after deletions.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if len(name) > 50 {
		return ErrNameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// NormalizeEmail canonicalizes an email address before it is compared or
// stored: surrounding whitespace is trimmed and the address is lower-cased.
// Uniqueness checks in the store compare normalized values exactly.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmailFormat performs basic validation of email format.
// Request payloads are additionally validated with the validator package's
// "email" tag before they reach the domain; this check guards direct store
// callers.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
