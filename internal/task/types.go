package task

import "homework-planner/internal/model"

// AddInput is the input for creating a task.
type AddInput struct {
	Title string
	Due   string // free text; empty becomes the "no due date" sentinel
}

// AddOutput is the result of creating a task.
type AddOutput struct {
	Task model.Task
}

// ListOutput is the user's full task list.
type ListOutput struct {
	Tasks []model.Task
}

// SyncOutput summarizes a Canvas import run.
type SyncOutput struct {
	Imported int // newly created tasks
	Skipped  int // items already present (same title + due)
	Mirrored int // deadlines mirrored to the calendar (0 when not configured)
}
