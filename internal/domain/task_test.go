package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		userID      int64
		title       string
		description string
		wantErr     error
	}{
		{
			name:        "valid task",
			userID:      1,
			title:       "buy milk",
			description: "2 liters, whole",
			wantErr:     nil,
		},
		{
			name:        "empty description is allowed",
			userID:      1,
			title:       "buy milk",
			description: "",
			wantErr:     nil,
		},
		{
			name:    "empty title",
			userID:  1,
			title:   "",
			wantErr: ErrEmptyTaskTitle,
		},
		{
			name:    "missing owner",
			userID:  0,
			title:   "buy milk",
			wantErr: ErrEmptyTaskOwner,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := NewTask(tt.userID, tt.title, tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Equal(t, tt.userID, task.UserID)
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.description, task.Description)
			assert.False(t, task.Completed, "new tasks start incomplete")
			assert.False(t, task.CreatedAt.IsZero())
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
		})
	}
}
