package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the login response never distinguishes the two.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrDishNotFound = errors.New("dish not found")
	ErrInvalidToken = errors.New("invalid token")
	ErrRateLimited  = errors.New("rate limit exceeded")
)
