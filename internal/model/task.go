package model

// Task is a homework entry owned by a single user. Due is free text: the
// planner normalizes it best-effort, everything else treats it as opaque.
type Task struct {
	ID     int64
	UserID int64
	Title  string
	Due    string
	Done   bool
}
