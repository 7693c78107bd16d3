package reminder

import "time"

// Threshold is a fixed lead time before a deadline at which a one-shot
// reminder fires.
type Threshold struct {
	Seconds int64
	Label   string
}

// thresholds is the fixed, ordered reminder schedule. Window checks walk the
// list in this order.
var thresholds = []Threshold{
	{Seconds: 86400, Label: "1 day"},
	{Seconds: 43200, Label: "12 hours"},
	{Seconds: 21600, Label: "6 hours"},
	{Seconds: 10800, Label: "3 hours"},
	{Seconds: 3600, Label: "1 hour"},
}

// windowSlack widens each threshold into an inclusive ±60s firing window, so
// a 1-second tick cannot step over a threshold unnoticed.
const windowSlack int64 = 60

// Thresholds returns the fixed reminder schedule.
func Thresholds() []Threshold {
	out := make([]Threshold, len(thresholds))
	copy(out, thresholds)
	return out
}

// Deadline is a task with a normalized future due instant.
type Deadline struct {
	TaskID int64
	Title  string
	Due    time.Time
}

// Event is a newly fired threshold reminder.
type Event struct {
	TaskID int64
	Title  string
	Due    time.Time
	Label  string
}
