package repository

// AddTaskOptions holds the parameters for creating a task row.
type AddTaskOptions struct {
	UserID int64
	Title  string
	Due    string
}
