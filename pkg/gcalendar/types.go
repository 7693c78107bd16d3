package gcalendar

import "time"

// DeadlineEventRequest is the input for mirroring a homework deadline.
type DeadlineEventRequest struct {
	Title       string
	Description string
	Due         time.Time
}

// Event is a simplified representation of the created calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Due      time.Time
}
