package http

import (
	"time"

	"homework-planner/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=1,max=128"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{Username: r.Username, Password: r.Password}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Username: r.Username, Password: r.Password}
}

// --- Response DTOs ---

type registerResp struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func (h *handler) newRegisterResp(out user.RegisterOutput) registerResp {
	return registerResp{UserID: out.UserID, Username: out.Username}
}

type loginResp struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		UserID:    out.UserID,
		Username:  out.Username,
		SessionID: out.SessionID,
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	}
}
