package task

import (
	"context"

	"personal-task-management/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// It owns the canonical task collection: mutations, derived queries, and the
// preview-then-commit generation flow.
type UseCase interface {
	// Add creates a task from user input and appends it to the collection.
	Add(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)

	// Update replaces only the supplied fields on the matching task.
	// A missing ID is tolerated silently: Found is false and no error is returned.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes the matching task. Missing IDs are a silent no-op.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Toggle flips the completion flag on the matching task. Missing IDs are a
	// silent no-op.
	Toggle(ctx context.Context, sc model.Scope, id string) (ToggleOutput, error)

	// Stats computes aggregate statistics over the current collection.
	Stats(ctx context.Context, sc model.Scope) (model.TaskStats, error)

	// Filter returns the tasks matching every supplied filter field.
	Filter(ctx context.Context, sc model.Scope, input FilterInput) (FilterOutput, error)

	// ByCategory is a convenience equivalent of Filter with only a category.
	ByCategory(ctx context.Context, sc model.Scope, category model.TaskCategory) (FilterOutput, error)

	// Generate asks the title source for candidate tasks. Candidates are
	// returned without entering the collection; committing them is a separate
	// explicit step. A title source failure is recorded on the generation
	// status and yields an empty candidate list, not an error.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// Commit runs each candidate through the same path as Add, re-stamped with
	// a fresh ID and timestamps. The AIGenerated flag is preserved.
	Commit(ctx context.Context, sc model.Scope, input CommitInput) (CommitOutput, error)

	// GenerationStatus reports whether a generation call is in flight and the
	// message of the last failure, if any.
	GenerationStatus(ctx context.Context, sc model.Scope) GenerationStatus
}
