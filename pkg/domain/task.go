package domain

// Task priority levels.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task status values.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Task is a unit of work assigned to a team member.
// DueDate and CreatedAt are carried as the strings the transport delivered;
// the machine never interprets them.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	CreatedAt   string `json:"createdAt"`
	Edited      bool   `json:"edited"`
}

// CloneTasks returns an independent copy of a task slice.
// Reducers use this so a transition never aliases caller-owned memory.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
