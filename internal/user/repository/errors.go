package repository

import "errors"

// Repository-level errors for the user domain.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrFailedToInsert    = errors.New("failed to insert user")
	ErrFailedToGet       = errors.New("failed to get user")
)
