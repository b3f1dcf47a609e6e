package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		username       string
		hashedPassword string
		wantErr        error
	}{
		{
			name:           "valid user",
			username:       "alice",
			hashedPassword: "$2a$10$somehashedvalue",
			wantErr:        nil,
		},
		{
			name:           "empty username",
			username:       "",
			hashedPassword: "$2a$10$somehashedvalue",
			wantErr:        ErrEmptyUsername,
		},
		{
			name:           "username too long",
			username:       strings.Repeat("a", 65),
			hashedPassword: "$2a$10$somehashedvalue",
			wantErr:        ErrUsernameTooLong,
		},
		{
			name:           "empty hashed password",
			username:       "alice",
			hashedPassword: "",
			wantErr:        ErrEmptyHashedPassword,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tt.username, tt.hashedPassword)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.hashedPassword, user.HashedPassword)
			assert.Zero(t, user.ID, "ID is assigned by the store, not the constructor")
			assert.False(t, user.CreatedAt.IsZero())
			assert.Equal(t, user.CreatedAt, user.UpdatedAt)
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	user := &User{
		ID:             1,
		Username:       "alice",
		HashedPassword: "$2a$10$somehashedvalue",
	}
	assert.NoError(t, user.Validate())

	user.Username = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyUsername)
}
