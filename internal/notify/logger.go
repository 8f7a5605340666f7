package notify

import (
	"github.com/charmbracelet/log"

	"github.com/pdxmph/schedule-tui/internal/schedule"
)

// LogBackend records schedule events in the application log.
type LogBackend struct {
	logger *log.Logger
}

// NewLogBackend creates a backend writing through the given logger.
func NewLogBackend(logger *log.Logger) *LogBackend {
	return &LogBackend{logger: logger}
}

// Name returns the backend identifier
func (l *LogBackend) Name() string {
	return "log"
}

// IsEnabled reports whether a logger is attached
func (l *LogBackend) IsEnabled() bool {
	return l.logger != nil
}

// TaskConflict logs the conflicting pair at warn level.
func (l *LogBackend) TaskConflict(proposed, existing schedule.Task) {
	l.logger.Warn("task conflict",
		"task", proposed.Description,
		"conflicts_with", existing.Description)
}

// TaskUpdated logs the updated task at info level.
func (l *LogBackend) TaskUpdated(task schedule.Task) {
	l.logger.Info("task updated",
		"task", task.Description,
		"completed", task.Completed)
}
