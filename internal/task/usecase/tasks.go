package usecase

import (
	"context"
	"strings"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// Add creates a task and appends it to the collection. The title must be
// non-empty after trimming; empty category and priority default to "other"
// and "medium".
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input task.AddInput) (task.AddOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.AddOutput{}, task.ErrEmptyTitle
	}

	category := input.Category
	if category == "" {
		category = model.CategoryOther
	}
	if !category.Valid() {
		return task.AddOutput{}, task.ErrInvalidCategory
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return task.AddOutput{}, task.ErrInvalidPriority
	}

	now := time.Now()
	t := model.Task{
		ID:          uc.ids.New(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Category:    category,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      sc.UserID,
		AIGenerated: input.AIGenerated,
	}

	uc.mu.Lock()
	uc.tasks = append(uc.tasks, t)
	uc.persistLocked()
	uc.mu.Unlock()

	uc.l.Infof(ctx, "Add: created task %s %q", t.ID, t.Title)
	return task.AddOutput{Task: t}, nil
}

// Update replaces only the supplied fields and refreshes UpdatedAt. A
// missing ID is tolerated silently: Found is false, no error.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return task.UpdateOutput{}, task.ErrEmptyTitle
	}
	if input.Category != nil && !input.Category.Valid() {
		return task.UpdateOutput{}, task.ErrInvalidCategory
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return task.UpdateOutput{}, task.ErrInvalidPriority
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexLocked(input.ID)
	if idx < 0 {
		uc.l.Debugf(ctx, "Update: task %s not found, no-op", input.ID)
		return task.UpdateOutput{}, nil
	}

	t := &uc.tasks[idx]
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Completed != nil {
		t.Completed = *input.Completed
	}
	if input.Category != nil {
		t.Category = *input.Category
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	t.UpdatedAt = time.Now()

	uc.persistLocked()
	return task.UpdateOutput{Task: *t, Found: true}, nil
}

// Delete removes the matching task. A missing ID is a silent no-op; the
// collection size decreases by exactly 0 or 1.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexLocked(id)
	if idx < 0 {
		uc.l.Debugf(ctx, "Delete: task %s not found, no-op", id)
		return nil
	}

	uc.tasks = append(uc.tasks[:idx], uc.tasks[idx+1:]...)
	uc.persistLocked()

	uc.l.Infof(ctx, "Delete: removed task %s", id)
	return nil
}

// Toggle flips the completion flag and refreshes UpdatedAt. A missing ID is
// a silent no-op.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (task.ToggleOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexLocked(id)
	if idx < 0 {
		uc.l.Debugf(ctx, "Toggle: task %s not found, no-op", id)
		return task.ToggleOutput{}, nil
	}

	t := &uc.tasks[idx]
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now()

	uc.persistLocked()
	return task.ToggleOutput{Task: *t, Found: true}, nil
}

// indexLocked returns the position of the task with the given ID, or -1.
// Must be called with mu held.
func (uc *implUseCase) indexLocked(id string) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
