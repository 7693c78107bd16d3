package sqlite

import (
	"context"
	"database/sql"

	"homework-planner/internal/model"
	repo "homework-planner/internal/task/repository"
)

// List returns the user's tasks, incomplete first, then by id. This is the
// scan order the reminder scheduler sees, so ties on identical deadlines go
// to the lower id.
func (r *implRepository) List(ctx context.Context, userID int64) ([]model.Task, error) {
	const query = `SELECT id, user_id, title, due, done FROM tasks WHERE user_id = ? ORDER BY done, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Due, &t.Done); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// Add inserts a task row.
func (r *implRepository) Add(ctx context.Context, opt repo.AddTaskOptions) (model.Task, error) {
	const query = `INSERT INTO tasks (user_id, title, due, done) VALUES (?, ?, ?, 0)`

	res, err := r.db.ExecContext(ctx, query, opt.UserID, opt.Title, opt.Due)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Add"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: last insert id: %v", r.dsn("Add"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	return model.Task{ID: id, UserID: opt.UserID, Title: opt.Title, Due: opt.Due}, nil
}

// AddIfAbsent inserts only when no row with identical title+due exists for
// the user. Returns the existing or created row and whether one was created.
func (r *implRepository) AddIfAbsent(ctx context.Context, opt repo.AddTaskOptions) (model.Task, bool, error) {
	const lookup = `SELECT id, user_id, title, due, done FROM tasks WHERE user_id = ? AND title = ? AND due = ? LIMIT 1`

	var existing model.Task
	err := r.db.QueryRowContext(ctx, lookup, opt.UserID, opt.Title, opt.Due).Scan(
		&existing.ID, &existing.UserID, &existing.Title, &existing.Due, &existing.Done,
	)
	if err == nil {
		return existing, false, nil
	}
	if err != sql.ErrNoRows {
		r.l.Errorf(ctx, "%s: lookup: %v", r.dsn("AddIfAbsent"), err)
		return model.Task{}, false, repo.ErrFailedToInsert
	}

	created, err := r.Add(ctx, opt)
	if err != nil {
		return model.Task{}, false, err
	}
	return created, true, nil
}

// MarkDone flags a task as completed.
func (r *implRepository) MarkDone(ctx context.Context, userID, taskID int64) error {
	const query = `UPDATE tasks SET done = 1 WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkDone"), err)
		return repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Delete removes a task.
func (r *implRepository) Delete(ctx context.Context, userID, taskID int64) error {
	const query = `DELETE FROM tasks WHERE user_id = ? AND id = ?`

	res, err := r.db.ExecContext(ctx, query, userID, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
