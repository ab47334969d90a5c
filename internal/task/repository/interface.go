package repository

import (
	"context"

	"personal-task-management/internal/model"
)

// Repository persists the task collection as a single keyed snapshot record.
type Repository interface {
	// Load returns the persisted collection, or an empty collection when no
	// snapshot exists yet.
	Load(ctx context.Context) ([]model.Task, error)

	// Save replaces the persisted snapshot with the given collection.
	Save(ctx context.Context, tasks []model.Task) error
}
