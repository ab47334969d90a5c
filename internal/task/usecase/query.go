package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// Stats computes aggregate statistics over the current collection. Pure
// read, no side effects; an empty collection yields all zeroes.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (model.TaskStats, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	total := len(uc.tasks)
	completed := 0
	for i := range uc.tasks {
		if uc.tasks[i].Completed {
			completed++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return model.TaskStats{
		Total:          total,
		Completed:      completed,
		Pending:        total - completed,
		CompletionRate: rate,
	}, nil
}

// Filter returns the tasks matching every non-nil filter field, in their
// original relative order. The result is an independent snapshot.
func (uc *implUseCase) Filter(ctx context.Context, sc model.Scope, input task.FilterInput) (task.FilterOutput, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	matched := make([]model.Task, 0, len(uc.tasks))
	for i := range uc.tasks {
		t := uc.tasks[i]
		if input.Category != nil && t.Category != *input.Category {
			continue
		}
		if input.Priority != nil && t.Priority != *input.Priority {
			continue
		}
		if input.Completed != nil && t.Completed != *input.Completed {
			continue
		}
		matched = append(matched, t)
	}

	return task.FilterOutput{Tasks: matched, Total: len(matched)}, nil
}

// ByCategory is shorthand for Filter with only a category constraint.
func (uc *implUseCase) ByCategory(ctx context.Context, sc model.Scope, category model.TaskCategory) (task.FilterOutput, error) {
	return uc.Filter(ctx, sc, task.FilterInput{Category: &category})
}
