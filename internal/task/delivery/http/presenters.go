package http

import (
	"fmt"

	"homework-planner/internal/model"
	"homework-planner/internal/task"
)

// --- Request DTOs ---

type addReq struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
	Due   string `json:"due"   binding:"max=64"`
}

func (r addReq) toInput() task.AddInput {
	return task.AddInput{Title: r.Title, Due: r.Due}
}

// --- Response DTOs ---

type taskResp struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Due   string `json:"due"`
	Done  bool   `json:"done"`
	Label string `json:"label"`
}

// newTaskResp renders the structured fields plus the display label. Clients
// show the label but act on the id.
func newTaskResp(t model.Task) taskResp {
	glyph := "⏳"
	if t.Done {
		glyph = "✅"
	}
	return taskResp{
		ID:    t.ID,
		Title: t.Title,
		Due:   t.Due,
		Done:  t.Done,
		Label: fmt.Sprintf("[%d] %s (Due: %s) %s", t.ID, t.Title, t.Due, glyph),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: len(tasks)}
}

type addResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newAddResp(out task.AddOutput) addResp {
	return addResp{Task: newTaskResp(out.Task)}
}

type syncResp struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Mirrored int `json:"mirrored"`
}

func (h *handler) newSyncResp(out task.SyncOutput) syncResp {
	return syncResp{Imported: out.Imported, Skipped: out.Skipped, Mirrored: out.Mirrored}
}
