package usecase

import (
	"context"
	"fmt"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// Generate asks the title source for candidate tasks. Candidates carry fresh
// IDs and timestamps but are NOT inserted into the collection; the caller
// holds them until Commit or discard. A title source failure is converted
// into a status message and an empty candidate list; it never propagates.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input task.GenerateInput) (task.GenerateOutput, error) {
	uc.mu.Lock()
	uc.loading = true
	uc.genErr = ""
	uc.mu.Unlock()

	uc.l.Infof(ctx, "Generate: topic=%q count=%d", input.Topic, input.Count)

	titles, err := uc.titles.GenerateTitles(ctx, input.Topic, input.Count)
	if err != nil {
		msg := fmt.Sprintf("failed to generate tasks: %v", err)
		uc.mu.Lock()
		uc.loading = false
		uc.genErr = msg
		uc.mu.Unlock()

		uc.l.Errorf(ctx, "Generate: title source failed: %v", err)
		return task.GenerateOutput{Tasks: []model.Task{}}, nil
	}

	if input.Count > 0 && len(titles) > input.Count {
		titles = titles[:input.Count]
	}

	category := input.Category
	if !category.Valid() {
		category = model.CategoryOther
	}

	now := time.Now()
	candidates := make([]model.Task, 0, len(titles))
	for _, title := range titles {
		candidates = append(candidates, model.Task{
			ID:          uc.ids.New(),
			Title:       title,
			Completed:   false,
			Category:    category,
			Priority:    model.PriorityMedium,
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      sc.UserID,
			AIGenerated: true,
		})
	}

	uc.mu.Lock()
	uc.loading = false
	uc.mu.Unlock()

	uc.l.Infof(ctx, "Generate: produced %d candidates", len(candidates))
	return task.GenerateOutput{Tasks: candidates, Count: len(candidates)}, nil
}

// Commit moves candidates into the collection through the same path as Add.
// Each one is re-stamped with a fresh ID and timestamps; the generation-time
// identity is deliberately not reused.
func (uc *implUseCase) Commit(ctx context.Context, sc model.Scope, input task.CommitInput) (task.CommitOutput, error) {
	created := make([]model.Task, 0, len(input.Candidates))
	for _, cand := range input.Candidates {
		out, err := uc.Add(ctx, sc, task.AddInput{
			Title:       cand.Title,
			Description: cand.Description,
			Category:    cand.Category,
			Priority:    cand.Priority,
			DueDate:     cand.DueDate,
			AIGenerated: cand.AIGenerated,
		})
		if err != nil {
			return task.CommitOutput{}, fmt.Errorf("commit candidate %q: %w", cand.Title, err)
		}
		created = append(created, out.Task)
	}

	uc.l.Infof(ctx, "Commit: saved %d generated tasks", len(created))
	return task.CommitOutput{Tasks: created, Count: len(created)}, nil
}

// GenerationStatus reports the shared loading flag and last failure message.
func (uc *implUseCase) GenerationStatus(ctx context.Context, sc model.Scope) task.GenerationStatus {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return task.GenerationStatus{
		Loading: uc.loading,
		Error:   uc.genErr,
	}
}
