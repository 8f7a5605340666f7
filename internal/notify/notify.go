// Package notify delivers schedule conflict and update events to the
// user-facing channels: the console, the application log, or nowhere.
package notify

import "github.com/pdxmph/schedule-tui/internal/schedule"

// Backend is a destination for schedule notifications. Every backend is a
// schedule.Notifier the store can invoke directly.
type Backend interface {
	schedule.Notifier

	// Name returns the backend identifier (e.g., "console", "log")
	Name() string

	// IsEnabled checks if the backend is able to deliver notifications
	IsEnabled() bool
}

// BackendFactory is a function that creates a new instance of a Backend
type BackendFactory func() Backend
