package auth

import "errors"

// Errors returned by token validation. The API layer maps all of them to
// 401 responses; the distinction only matters for the client message.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's exp claim is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token's validity window has not
	// started yet.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates no token was provided where one is required.
	ErrMissingToken = errors.New("authentication token is missing")
)
