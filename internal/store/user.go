package store

import (
	"context"

	"github.com/vastberg/user-api/internal/domain"
)

// UserPatch carries the fields of a partial update. A nil field is left
// untouched; a non-nil field replaces the stored value.
type UserPatch struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil
}

// UserStore defines the interface for user data access.
//
// Implementations must guarantee that mutating operations (Create, Replace,
// Patch, Delete, DeleteAll) execute with mutual exclusion, so that two
// concurrent creates never observe the same next ID and two concurrent
// uniqueness checks never both pass for the same email.
type UserStore interface {
	// List returns all users in insertion order. It never fails.
	List(ctx context.Context) []domain.User

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Search returns all users whose name contains the given term,
	// case-insensitively, in insertion order.
	// Returns ErrEmptyQuery if the term is empty.
	Search(ctx context.Context, term string) ([]domain.User, error)

	// Create appends a new user with the next available ID.
	// Returns ErrMissingFields if name or email is empty.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, name, email string) (*domain.User, error)

	// Replace overwrites the full record at the given ID, keeping the ID
	// and the record's position in the collection.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrMissingFields if name or email is empty.
	// Note: Replace deliberately performs no cross-user email uniqueness
	// check, mirroring the behavior of the system it was ported from.
	Replace(ctx context.Context, id int64, name, email string) (*domain.User, error)

	// Patch applies only the supplied fields to the user with the given ID.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmptyPatch if the patch carries no fields.
	// Returns ErrEmailExists if the new email is held by a different user.
	Patch(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)

	// Delete removes the user with the given ID and returns the removed
	// record. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) (*domain.User, error)

	// DeleteAll clears the store and returns the number of users removed.
	// Returns ErrConfirmationRequired unless confirm equals "yes".
	DeleteAll(ctx context.Context, confirm string) (int, error)
}
