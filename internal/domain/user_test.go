package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vastberg/user-api/internal/domain"
)

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    domain.User
		wantErr error
	}{
		{
			name: "valid user",
			user: domain.User{ID: 1, Name: "Anna", Email: "anna@example.com"},
		},
		{
			name:    "empty name",
			user:    domain.User{ID: 1, Name: "", Email: "anna@example.com"},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "whitespace-only name",
			user:    domain.User{ID: 1, Name: "   ", Email: "anna@example.com"},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "single-character name",
			user:    domain.User{ID: 1, Name: "A", Email: "anna@example.com"},
			wantErr: domain.ErrNameTooShort,
		},
		{
			name:    "overlong name",
			user:    domain.User{ID: 1, Name: strings.Repeat("a", 51), Email: "anna@example.com"},
			wantErr: domain.ErrNameTooLong,
		},
		{
			name:    "empty email",
			user:    domain.User{ID: 1, Name: "Anna", Email: ""},
			wantErr: domain.ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			user:    domain.User{ID: 1, Name: "Anna", Email: "anna.example.com"},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "email without domain dot",
			user:    domain.User{ID: 1, Name: "Anna", Email: "anna@example"},
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "anna@example.com", domain.NormalizeEmail("  ANNA@Example.COM "))
	assert.Equal(t, "erik@example.com", domain.NormalizeEmail("erik@example.com"))
	assert.Equal(t, "", domain.NormalizeEmail("   "))
}
