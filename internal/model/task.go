package model

import "time"

// TaskCategory is the closed set of task categories.
type TaskCategory string

const (
	CategoryWork     TaskCategory = "work"
	CategoryPersonal TaskCategory = "personal"
	CategoryLearning TaskCategory = "learning"
	CategoryHealth   TaskCategory = "health"
	CategoryFinance  TaskCategory = "finance"
	CategoryOther    TaskCategory = "other"
)

// Valid reports whether the category is one of the known values.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryLearning, CategoryHealth, CategoryFinance, CategoryOther:
		return true
	}
	return false
}

// TaskPriority is the closed set of task priorities.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Valid reports whether the priority is one of the known values.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a user-owned unit of work.
// CreatedAt is set once at creation; UpdatedAt is refreshed on every
// successful mutation, so UpdatedAt >= CreatedAt always holds.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Completed   bool         `json:"completed"`
	Category    TaskCategory `json:"category"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	UserID      string       `json:"user_id"`
	AIGenerated bool         `json:"ai_generated"`
}

// TaskStats is derived from the current collection on demand and never
// persisted. CompletionRate is a raw percentage, rounding is left to
// presentation.
type TaskStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}
