package canvas

// Plannable is the gradable object nested inside a planner item.
type Plannable struct {
	Title string `json:"title"`
	DueAt string `json:"due_at"` // ISO 8601, UTC-suffixed
}

// PlannerItem is one upcoming entry from GET /api/v1/planner/items.
type PlannerItem struct {
	Title         string    `json:"title"`
	Plannable     Plannable `json:"plannable"`
	PlannableDate string    `json:"plannable_date"`
	ContextType   string    `json:"context_type"`
	ContextName   string    `json:"context_name"`
}

// Course is one entry from GET /api/v1/courses.
type Course struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocalTask is a planner item reshaped into the app's task fields. Done is
// always false on import; completion is controlled locally.
type LocalTask struct {
	Task   string
	Due    string // ISO text, empty when the item carries no date
	Done   bool
	Course string
}
