package schedule

import (
	"errors"
	"fmt"
)

// Validation and store errors. All of them are recoverable: the shell
// renders a message and resumes its loop.
var (
	ErrInvalidInterval  = errors.New("start time must be strictly before end time")
	ErrInvalidClock     = errors.New("invalid time, expected HH:mm")
	ErrInvalidPriority  = errors.New("invalid priority, expected LOW, MEDIUM or HIGH")
	ErrEmptyDescription = errors.New("task description must not be empty")
	ErrNotFound         = errors.New("task not found")
)

// ConflictError reports that a proposed task's interval overlaps a task
// already in the store. The store is never mutated when one is returned.
type ConflictError struct {
	Description   string // the task being added or edited
	ConflictsWith string // the stored task it overlaps
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("task %q conflicts with existing task %q", e.Description, e.ConflictsWith)
}
