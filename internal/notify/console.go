package notify

import (
	"fmt"
	"io"

	"github.com/pdxmph/schedule-tui/internal/schedule"
)

// ConsoleBackend renders alert and info lines to a writer, the way the
// interactive shell reports them.
type ConsoleBackend struct {
	w io.Writer
}

// NewConsoleBackend creates a console backend writing to w.
func NewConsoleBackend(w io.Writer) *ConsoleBackend {
	return &ConsoleBackend{w: w}
}

// Name returns the backend identifier
func (c *ConsoleBackend) Name() string {
	return "console"
}

// IsEnabled reports whether the backend has somewhere to write
func (c *ConsoleBackend) IsEnabled() bool {
	return c.w != nil
}

// TaskConflict renders an alert naming both tasks.
func (c *ConsoleBackend) TaskConflict(proposed, existing schedule.Task) {
	fmt.Fprintf(c.w, "ALERT: task %q conflicts with existing task %q\n",
		proposed.Description, existing.Description)
}

// TaskUpdated renders an info line for the updated task.
func (c *ConsoleBackend) TaskUpdated(task schedule.Task) {
	fmt.Fprintf(c.w, "INFO: task %q has been updated\n", task.Description)
}
