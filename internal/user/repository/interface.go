package repository

import (
	"context"

	"homework-planner/internal/model"
)

// Repository is the interface for user data access.
type Repository interface {
	// CreateUser inserts a new account row.
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)

	// GetUserByUsername returns the zero-value User (ID == 0) when no row
	// matches — not-found is not an error.
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
}

// CreateUserOptions holds the parameters for creating a user row.
type CreateUserOptions struct {
	Username     string
	PasswordHash string
	Salt         []byte
}
