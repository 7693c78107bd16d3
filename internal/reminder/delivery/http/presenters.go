package http

import (
	"fmt"

	"homework-planner/internal/reminder"
	"homework-planner/pkg/response"
)

type deadlineResp struct {
	TaskID int64             `json:"task_id"`
	Title  string            `json:"title"`
	Due    response.DateTime `json:"due"`
}

type reminderResp struct {
	TaskID  int64             `json:"task_id"`
	Title   string            `json:"title"`
	Due     response.DateTime `json:"due"`
	Label   string            `json:"label"`
	Message string            `json:"message"`
}

type statusResp struct {
	Active    bool           `json:"active"`
	Countdown string         `json:"countdown"`
	Nearest   *deadlineResp  `json:"nearest,omitempty"`
	Reminders []reminderResp `json:"reminders"`
}

func newStatusResp(active bool, snap *reminder.Snapshot) statusResp {
	resp := statusResp{
		Active:    active,
		Countdown: reminder.NoUpcomingMessage,
		Reminders: []reminderResp{},
	}
	if snap == nil {
		return resp
	}

	resp.Countdown = snap.Countdown
	if snap.Nearest != nil {
		resp.Nearest = &deadlineResp{
			TaskID: snap.Nearest.TaskID,
			Title:  snap.Nearest.Title,
			Due:    response.DateTime(snap.Nearest.Due),
		}
	}
	for _, ev := range snap.Fired {
		resp.Reminders = append(resp.Reminders, reminderResp{
			TaskID:  ev.TaskID,
			Title:   ev.Title,
			Due:     response.DateTime(ev.Due),
			Label:   ev.Label,
			Message: fmt.Sprintf("Reminder: %q is due in %s", ev.Title, ev.Label),
		})
	}
	return resp
}

type startResp struct {
	SessionID string `json:"session_id"`
}
