package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"homework-planner/internal/storage/sqlite"
	"homework-planner/internal/task/repository"
	taskRepo "homework-planner/internal/task/repository/sqlite"
	userRepo "homework-planner/internal/user/repository"
	userSqlite "homework-planner/internal/user/repository/sqlite"
)

type stubLogger struct{}

func (stubLogger) Debug(ctx context.Context, args ...any)                  {}
func (stubLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Info(ctx context.Context, args ...any)                   {}
func (stubLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Warn(ctx context.Context, args ...any)                   {}
func (stubLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Error(ctx context.Context, args ...any)                  {}
func (stubLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) DPanic(ctx context.Context, args ...any)                 {}
func (stubLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (stubLogger) Panic(ctx context.Context, args ...any)                  {}
func (stubLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Fatal(ctx context.Context, args ...any)                  {}
func (stubLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// openTestDB opens a migrated database in a temp dir and seeds one user.
func openTestDB(t *testing.T) (repository.Repository, int64) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	u, err := userSqlite.New(db, stubLogger{}).CreateUser(ctx, userRepo.CreateUserOptions{
		Username:     "alice",
		PasswordHash: "hash",
		Salt:         []byte("salt"),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return taskRepo.New(db, stubLogger{}), u.ID
}

func TestTaskRepositoryRoundTrip(t *testing.T) {
	r, userID := openTestDB(t)
	ctx := context.Background()

	first, err := r.Add(ctx, repository.AddTaskOptions{UserID: userID, Title: "Essay", Due: "2025-12-08 16:30"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := r.Add(ctx, repository.AddTaskOptions{UserID: userID, Title: "Quiz", Due: "no due date"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := r.MarkDone(ctx, userID, first.ID); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}

	tasks, err := r.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	// Incomplete rows sort first.
	if tasks[0].ID != second.ID || tasks[0].Done {
		t.Errorf("tasks[0] = %+v, want incomplete quiz first", tasks[0])
	}
	if tasks[1].ID != first.ID || !tasks[1].Done {
		t.Errorf("tasks[1] = %+v, want completed essay last", tasks[1])
	}

	if err := r.Delete(ctx, userID, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	tasks, _ = r.List(ctx, userID)
	if len(tasks) != 1 {
		t.Errorf("got %d tasks after delete, want 1", len(tasks))
	}
}

func TestTaskRepositoryAddIfAbsent(t *testing.T) {
	r, userID := openTestDB(t)
	ctx := context.Background()

	opt := repository.AddTaskOptions{UserID: userID, Title: "Essay", Due: "2025-12-08T23:59:59Z"}

	created, inserted, err := r.AddIfAbsent(ctx, opt)
	if err != nil || !inserted {
		t.Fatalf("first AddIfAbsent: task=%+v inserted=%v err=%v", created, inserted, err)
	}

	same, inserted, err := r.AddIfAbsent(ctx, opt)
	if err != nil {
		t.Fatalf("second AddIfAbsent: %v", err)
	}
	if inserted || same.ID != created.ID {
		t.Errorf("second AddIfAbsent: task=%+v inserted=%v, want existing row", same, inserted)
	}

	// Same title with a different due is a distinct task.
	opt.Due = "2025-12-09T23:59:59Z"
	_, inserted, err = r.AddIfAbsent(ctx, opt)
	if err != nil || !inserted {
		t.Errorf("different due: inserted=%v err=%v, want insert", inserted, err)
	}
}

func TestTaskRepositoryNotFound(t *testing.T) {
	r, userID := openTestDB(t)
	ctx := context.Background()

	if err := r.MarkDone(ctx, userID, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("MarkDone missing row: %v, want ErrNotFound", err)
	}
	if err := r.Delete(ctx, userID, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete missing row: %v, want ErrNotFound", err)
	}

	// Another user's task is out of reach.
	created, err := r.Add(ctx, repository.AddTaskOptions{UserID: userID, Title: "Essay", Due: "no due date"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.MarkDone(ctx, userID+1, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("cross-user MarkDone: %v, want ErrNotFound", err)
	}
}
