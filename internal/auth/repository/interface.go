package repository

import (
	"context"

	"personal-task-management/internal/model"
)

// Record is the persisted session state.
type Record struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"is_authenticated"`
}

// Repository persists the session as a single keyed record, independent of
// the task record.
type Repository interface {
	// Load returns the persisted session, or an empty unauthenticated record
	// when none exists yet.
	Load(ctx context.Context) (Record, error)

	// Save replaces the persisted session record.
	Save(ctx context.Context, rec Record) error
}
