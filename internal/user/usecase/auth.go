package usecase

import (
	"context"
	"errors"
	"strings"

	"homework-planner/internal/model"
	"homework-planner/internal/user"
	"homework-planner/internal/user/repository"
	"homework-planner/pkg/scope"
)

// Register creates a new account.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return user.RegisterOutput{}, user.ErrEmptyCredentials
	}

	salt, err := newSalt()
	if err != nil {
		return user.RegisterOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username:     username,
		PasswordHash: hashPassword(input.Password, salt),
		Salt:         salt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return user.RegisterOutput{}, user.ErrUsernameTaken
		}
		return user.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "Register: created user %q id=%d", created.Username, created.ID)
	return user.RegisterOutput{UserID: created.ID, Username: created.Username}, nil
}

// Login verifies credentials, replaces any previous reminder session with a
// fresh one (fired-state resets on login), and issues an access token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrEmptyCredentials
	}

	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return user.LoginOutput{}, err
	}
	if u.ID == 0 || !verifyPassword(input.Password, u.Salt, u.PasswordHash) {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	session := uc.sessions.StartSession(context.WithoutCancel(ctx), u.ID)

	token, expiresAt, err := uc.tokens.Generate(scope.Claims{
		UserID:    u.ID,
		Username:  u.Username,
		SessionID: session.ID,
	})
	if err != nil {
		uc.sessions.StopSession(u.ID)
		return user.LoginOutput{}, err
	}

	uc.l.Infof(ctx, "Login: user %q id=%d session=%s", u.Username, u.ID, session.ID)
	return user.LoginOutput{
		UserID:    u.ID,
		Username:  u.Username,
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout stops the caller's reminder session; fired-state is discarded.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	uc.sessions.StopSession(sc.UserID)
	uc.l.Infof(ctx, "Logout: user id=%d", sc.UserID)
	return nil
}
