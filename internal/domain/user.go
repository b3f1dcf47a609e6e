package domain

import (
	"errors"
	"time"
)

// Common user validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 64 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// maxUsernameLength is the longest username the service accepts.
const maxUsernameLength = 64

// User represents a registered account in the task-tracking service.
// The ID is assigned by the store on creation; Username is unique across
// all users and immutable afterwards.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username and hashed password.
// The caller is responsible for hashing the password before constructing
// the user; plaintext passwords never enter the domain layer.
// The ID is zero until the store assigns one.
// Returns an error if validation fails.
func NewUser(username, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Username:       username,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if len(u.Username) > maxUsernameLength {
		return ErrUsernameTooLong
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}
