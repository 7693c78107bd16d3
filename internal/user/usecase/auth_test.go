package usecase_test

import (
	"context"
	"testing"
	"time"

	"homework-planner/internal/model"
	"homework-planner/internal/reminder"
	"homework-planner/internal/user"
	"homework-planner/internal/user/repository"
	"homework-planner/internal/user/usecase"
	"homework-planner/pkg/scope"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUserRepo struct {
	users  map[string]model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]model.User)}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if _, exists := m.users[opt.Username]; exists {
		return model.User{}, repository.ErrDuplicateUsername
	}
	m.nextID++
	u := model.User{ID: m.nextID, Username: opt.Username, PasswordHash: opt.PasswordHash, Salt: opt.Salt}
	m.users[opt.Username] = u
	return u, nil
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return m.users[username], nil
}

type emptyTaskSource struct{}

func (emptyTaskSource) List(ctx context.Context, userID int64) ([]model.Task, error) {
	return nil, nil
}

func newAuthUC(t *testing.T, repo repository.Repository) (user.UseCase, *reminder.Manager, *scope.Manager) {
	t.Helper()
	l := &mockLogger{}
	sessions := reminder.NewManager(emptyTaskSource{}, time.UTC, time.Hour, l)
	t.Cleanup(sessions.StopAll)
	tokens := scope.NewManager("test-secret", "homework-planner", 0)
	return usecase.New(l, repo, tokens, sessions), sessions, tokens
}

func TestRegister(t *testing.T) {
	repo := newMockUserRepo()
	uc, _, _ := newAuthUC(t, repo)
	ctx := context.Background()

	out, err := uc.Register(ctx, user.RegisterInput{Username: "alice", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if out.UserID == 0 || out.Username != "alice" {
		t.Errorf("Register() = %+v", out)
	}

	stored := repo.users["alice"]
	if stored.PasswordHash == "hunter2" || stored.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if len(stored.Salt) == 0 {
		t.Error("no salt stored")
	}

	if _, err := uc.Register(ctx, user.RegisterInput{Username: "alice", Password: "other"}); err != user.ErrUsernameTaken {
		t.Errorf("duplicate Register() error = %v, want ErrUsernameTaken", err)
	}

	if _, err := uc.Register(ctx, user.RegisterInput{Username: "  ", Password: "x"}); err != user.ErrEmptyCredentials {
		t.Errorf("blank Register() error = %v, want ErrEmptyCredentials", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	uc, sessions, tokens := newAuthUC(t, repo)
	ctx := context.Background()

	if _, err := uc.Register(ctx, user.RegisterInput{Username: "alice", Password: "hunter2"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	out, err := uc.Login(ctx, user.LoginInput{Username: "alice", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.Token == "" || out.SessionID == "" {
		t.Fatalf("Login() = %+v, want token and session id", out)
	}

	// The token round-trips through the verifier.
	claims, err := tokens.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != out.UserID || claims.SessionID != out.SessionID {
		t.Errorf("claims = %+v, want %+v", claims, out)
	}

	// A reminder session is running for the user.
	if s := sessions.Get(out.UserID); s == nil || s.ID != out.SessionID {
		t.Errorf("session = %+v, want id %s", s, out.SessionID)
	}

	// A second login replaces the session.
	again, err := uc.Login(ctx, user.LoginInput{Username: "alice", Password: "hunter2"})
	if err != nil {
		t.Fatalf("second Login() error = %v", err)
	}
	if again.SessionID == out.SessionID {
		t.Error("second login reused the previous session id")
	}

	// Logout tears the session down.
	if err := uc.Logout(ctx, model.Scope{UserID: out.UserID}); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if sessions.Get(out.UserID) != nil {
		t.Error("session survived logout")
	}
}

func TestLoginRejections(t *testing.T) {
	repo := newMockUserRepo()
	uc, _, _ := newAuthUC(t, repo)
	ctx := context.Background()

	if _, err := uc.Register(ctx, user.RegisterInput{Username: "alice", Password: "hunter2"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "wrong password", username: "alice", password: "wrong", wantErr: user.ErrInvalidCredentials},
		{name: "unknown user", username: "bob", password: "hunter2", wantErr: user.ErrInvalidCredentials},
		{name: "empty password", username: "alice", password: "", wantErr: user.ErrEmptyCredentials},
		{name: "empty username", username: "", password: "x", wantErr: user.ErrEmptyCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(ctx, user.LoginInput{Username: tt.username, Password: tt.password}); err != tt.wantErr {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
