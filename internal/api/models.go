package api

import (
	"strings"

	"github.com/vastberg/user-api/internal/domain"
)

// Common request/response structures

// CreateUserRequest defines the payload for creating a user.
// Validation runs on the normalized values: the name is trimmed and the
// email lower-cased before the rules are applied.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
}

// Normalize trims the name and canonicalizes the email in place.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = domain.NormalizeEmail(r.Email)
}

// ReplaceUserRequest defines the payload for a full replace. All fields are
// required, matching PUT semantics.
type ReplaceUserRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
}

// Normalize trims the name and canonicalizes the email in place.
func (r *ReplaceUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = domain.NormalizeEmail(r.Email)
}

// PatchUserRequest defines the payload for a partial update. Absent fields
// stay nil and leave the stored value untouched; the store rejects a patch
// with no fields at all.
type PatchUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// Normalize trims the name and canonicalizes the email when supplied.
func (r *PatchUserRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Email != nil {
		normalized := domain.NormalizeEmail(*r.Email)
		r.Email = &normalized
	}
}

// MessageResponse is the generic success envelope for endpoints that return
// a human-readable message rather than a record.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteUserResponse confirms a single-user deletion and echoes the removed
// record.
type DeleteUserResponse struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
}

// DeleteAllUsersResponse confirms a bulk deletion with the prior count.
type DeleteAllUsersResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
