package schedule

import (
	"fmt"
	"strings"
)

// Priority is the scheduling priority of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists every valid priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority matches text against the known priority levels, ignoring
// case. Anything else is rejected rather than silently defaulted.
func ParsePriority(text string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(text, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, text)
}

// Task is a described, time-boxed, prioritized unit of work. The
// description doubles as the task's case-insensitive key within a Store.
type Task struct {
	Description string
	Start       Clock
	End         Clock
	Priority    Priority
	Completed   bool
}

// NewTask builds a validated Task from the raw strings the shell collects.
// New tasks always start out not completed.
func NewTask(description, start, end, priority string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}

	startClock, err := ParseClock(start)
	if err != nil {
		return Task{}, err
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return Task{}, err
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return Task{}, err
	}

	if startClock >= endClock {
		return Task{}, fmt.Errorf("%w: %s >= %s", ErrInvalidInterval, startClock, endClock)
	}

	return Task{
		Description: description,
		Start:       startClock,
		End:         endClock,
		Priority:    p,
	}, nil
}

// Overlaps reports whether the two tasks' half-open intervals intersect.
// Back-to-back tasks, one ending exactly when the other starts, do not
// overlap.
func (t Task) Overlaps(other Task) bool {
	return t.Start < other.End && t.End > other.Start
}

// String renders the task the way the schedule views display it:
// "HH:mm - HH:mm: <description> [<PRIORITY>]", plus " [COMPLETED]" once
// the task is done.
func (t Task) String() string {
	s := fmt.Sprintf("%s - %s: %s [%s]", t.Start, t.End, t.Description, t.Priority)
	if t.Completed {
		s += " [COMPLETED]"
	}
	return s
}
