package notify

import "github.com/pdxmph/schedule-tui/internal/schedule"

// NoopBackend is a backend that does nothing, used when no notification
// channel is configured.
type NoopBackend struct{}

// NewNoopBackend creates a new no-op backend
func NewNoopBackend() Backend {
	return &NoopBackend{}
}

// Name returns the backend identifier
func (n *NoopBackend) Name() string {
	return "noop"
}

// IsEnabled always returns false for the noop backend
func (n *NoopBackend) IsEnabled() bool {
	return false
}

// TaskConflict discards the event
func (n *NoopBackend) TaskConflict(proposed, existing schedule.Task) {}

// TaskUpdated discards the event
func (n *NoopBackend) TaskUpdated(task schedule.Task) {}

// Register the noop backend
func init() {
	Register("noop", func() Backend { return NewNoopBackend() })
}
