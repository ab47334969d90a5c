package http

import (
	"errors"

	"personal-task-management/internal/task"
	pkgErrors "personal-task-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(400, "task title must not be empty")
	case errors.Is(err, task.ErrInvalidCategory):
		return pkgErrors.NewHTTPError(400, "unknown task category")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(400, "unknown task priority")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
