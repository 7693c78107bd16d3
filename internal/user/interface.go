package user

import (
	"context"

	"homework-planner/internal/model"
)

// UseCase defines the business logic interface for the user domain.
type UseCase interface {
	// Register creates a new account with a PBKDF2-hashed password.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)

	// Login verifies credentials, starts a fresh reminder session, and
	// issues an access token bound to it.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Logout stops the caller's reminder session.
	Logout(ctx context.Context, sc model.Scope) error
}
