package reminder

import (
	"fmt"
	"time"
)

// NoUpcomingMessage is rendered when no incomplete task has a parseable
// future due date.
const NoUpcomingMessage = "No upcoming tasks"

// FormatCountdown renders the time remaining until the nearest deadline as
// "Next due: <title> in 0d 16h 00m 00s". Remaining time is decomposed by
// integer division; negative remainders cannot occur because nearest is
// always strictly in the future at tick time.
func FormatCountdown(nearest *Deadline, now time.Time) string {
	if nearest == nil {
		return NoUpcomingMessage
	}

	total := int64(nearest.Due.Sub(now) / time.Second)
	if total < 0 {
		total = 0
	}
	days := total / 86400
	rem := total % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds := rem % 60

	return fmt.Sprintf("Next due: %s in %dd %02dh %02dm %02ds",
		nearest.Title, days, hours, minutes, seconds)
}
