package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidCategory = errors.New("unknown task category")
	ErrInvalidPriority = errors.New("unknown task priority")
)
