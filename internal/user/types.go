package user

import "time"

// RegisterInput is the input for account creation.
type RegisterInput struct {
	Username string
	Password string
}

// RegisterOutput is the result of account creation.
type RegisterOutput struct {
	UserID   int64
	Username string
}

// LoginInput is the input for authentication.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the issued access token and session identity.
type LoginOutput struct {
	UserID    int64
	Username  string
	SessionID string
	Token     string
	ExpiresAt time.Time
}
