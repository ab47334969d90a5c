package task

import (
	"time"

	"personal-task-management/internal/model"
)

// AddInput is the payload for creating a task. Identity and timestamps are
// assigned by the store.
type AddInput struct {
	Title       string
	Description string
	Completed   bool
	Category    model.TaskCategory
	Priority    model.TaskPriority
	DueDate     *time.Time
	AIGenerated bool
}

// AddOutput is the result of Add.
type AddOutput struct {
	Task model.Task
}

// UpdateInput is a partial update: nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Completed   *bool
	Category    *model.TaskCategory
	Priority    *model.TaskPriority
	DueDate     *time.Time
}

// UpdateOutput is the result of Update. Found is false when no task matched
// the ID.
type UpdateOutput struct {
	Task  model.Task
	Found bool
}

// ToggleOutput is the result of Toggle. Found is false when no task matched
// the ID.
type ToggleOutput struct {
	Task  model.Task
	Found bool
}

// FilterInput selects tasks by exact match on every non-nil field. Fields
// compose with logical AND; absent fields impose no constraint.
type FilterInput struct {
	Category  *model.TaskCategory
	Priority  *model.TaskPriority
	Completed *bool
}

// FilterOutput is an independent snapshot of the matching tasks in their
// original relative order. Mutating it does not affect the collection.
type FilterOutput struct {
	Tasks []model.Task
	Total int
}

// GenerateInput requests candidate tasks for a topic. An empty Category
// defaults to "other". Count is clamped to the number of titles the source
// returns.
type GenerateInput struct {
	Topic    string
	Count    int
	Category model.TaskCategory
}

// GenerateOutput carries the candidate tasks. They are not part of the
// collection until committed.
type GenerateOutput struct {
	Tasks []model.Task
	Count int
}

// Candidate is one generated task queued for commit. The batch is owned by
// the caller until Commit is invoked.
type Candidate struct {
	Title       string
	Description string
	Category    model.TaskCategory
	Priority    model.TaskPriority
	DueDate     *time.Time
	AIGenerated bool
}

// CommitInput is the batch of candidates to move into the collection.
type CommitInput struct {
	Candidates []Candidate
}

// CommitOutput lists the tasks created by the commit.
type CommitOutput struct {
	Tasks []model.Task
	Count int
}

// GenerationStatus mirrors the store's shared loading/error fields. Both are
// process-wide, not scoped per call: concurrent Generate calls interleave
// their effects, last to finish wins.
type GenerationStatus struct {
	Loading bool
	Error   string
}
