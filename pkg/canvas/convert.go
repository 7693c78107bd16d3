package canvas

// ToLocalTasks converts planner items to the app's task shape. Title falls
// back from the plannable to the item itself; the due text prefers the
// gradable due_at over the calendar plannable_date.
func ToLocalTasks(items []PlannerItem) []LocalTask {
	tasks := make([]LocalTask, 0, len(items))
	for _, it := range items {
		title := it.Plannable.Title
		if title == "" {
			title = it.Title
		}
		if title == "" {
			title = "Untitled"
		}

		due := it.Plannable.DueAt
		if due == "" {
			due = it.PlannableDate
		}

		course := ""
		if it.ContextType == "Course" {
			course = it.ContextName
		}

		tasks = append(tasks, LocalTask{
			Task:   title,
			Due:    due,
			Done:   false,
			Course: course,
		})
	}
	return tasks
}
