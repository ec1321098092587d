package auth

import "errors"

var (
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so the API cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
