package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"homework-planner/internal/model"
	repo "homework-planner/internal/user/repository"
)

// CreateUser inserts a new account row. A violated username uniqueness
// constraint maps to ErrDuplicateUsername.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `INSERT INTO users (username, password_hash, salt) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, opt.Username, opt.PasswordHash, opt.Salt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.User{}, repo.ErrDuplicateUsername
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: last insert id: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}

	return model.User{
		ID:           id,
		Username:     opt.Username,
		PasswordHash: opt.PasswordHash,
		Salt:         opt.Salt,
	}, nil
}

// GetUserByUsername retrieves an account by username.
// Returns zero-value User (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	const query = `SELECT id, username, password_hash, salt FROM users WHERE username = ? LIMIT 1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Salt)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByUsername"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
