// Package schedule holds the day's tasks and enforces the no-overlap rule.
package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// Notifier receives callbacks for schedule events. Notifiers run
// synchronously, in registration order, before the triggering store
// operation returns; a panicking notifier aborts that operation.
type Notifier interface {
	// TaskConflict is invoked when a proposed task overlaps a stored one.
	TaskConflict(proposed, existing Task)
	// TaskUpdated is invoked after a stored task is edited or completed.
	TaskUpdated(task Task)
}

// Store is the ordered collection of the day's tasks, kept sorted by start
// time after every mutation. No two stored tasks ever overlap. All state
// is in memory and discarded on exit.
//
// A Store is driven from a single goroutine (the shell's event loop) and
// is not internally synchronized; callers sharing one across goroutines
// must add their own locking around every operation.
type Store struct {
	tasks     []Task
	notifiers []Notifier
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a notifier for conflict and update events.
func (s *Store) Subscribe(n Notifier) {
	s.notifiers = append(s.notifiers, n)
}

// Add inserts a task, rejecting it with a ConflictError if its interval
// overlaps any stored task. The store is unchanged on failure.
func (s *Store) Add(task Task) error {
	for _, existing := range s.tasks {
		if task.Overlaps(existing) {
			s.notifyConflict(task, existing)
			return &ConflictError{Description: task.Description, ConflictsWith: existing.Description}
		}
	}

	s.tasks = append(s.tasks, task)
	s.sortTasks()
	return nil
}

// Remove deletes the task whose description matches, ignoring case.
func (s *Store) Remove(description string) error {
	i := s.indexOf(description)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, description)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Tasks returns a copy of every task in start-time order. External
// mutation of the returned slice cannot bypass the store's invariants.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TasksByPriority returns a copy of the tasks at the given priority, in
// start-time order. An empty slice, not an error, when none match.
func (s *Store) TasksByPriority(p Priority) []Task {
	out := make([]Task, 0)
	for _, t := range s.tasks {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Edit revalidates and replaces the fields of the task matching
// oldDescription, keeping its completion flag. The candidate is validated
// and checked against every other stored task before anything is mutated,
// so a failed edit leaves the original task untouched.
func (s *Store) Edit(oldDescription, newDescription, start, end, priority string) error {
	i := s.indexOf(oldDescription)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, oldDescription)
	}

	candidate, err := NewTask(newDescription, start, end, priority)
	if err != nil {
		return err
	}

	for j := range s.tasks {
		if j == i {
			continue
		}
		if candidate.Overlaps(s.tasks[j]) {
			s.notifyConflict(candidate, s.tasks[j])
			return &ConflictError{Description: candidate.Description, ConflictsWith: s.tasks[j].Description}
		}
	}

	s.tasks[i].Description = candidate.Description
	s.tasks[i].Start = candidate.Start
	s.tasks[i].End = candidate.End
	s.tasks[i].Priority = candidate.Priority
	updated := s.tasks[i]

	s.sortTasks()
	s.notifyUpdated(updated)
	return nil
}

// MarkCompleted flags the matching task as done and fires the update
// hook. Completing an already-completed task succeeds silently and fires
// the hook again.
func (s *Store) MarkCompleted(description string) error {
	i := s.indexOf(description)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, description)
	}
	s.tasks[i].Completed = true
	s.notifyUpdated(s.tasks[i])
	return nil
}

// indexOf finds a task by description, ignoring case. Returns -1 if no
// task matches.
func (s *Store) indexOf(description string) int {
	for i := range s.tasks {
		if strings.EqualFold(s.tasks[i].Description, description) {
			return i
		}
	}
	return -1
}

// sortTasks re-sorts ascending by start time. The sort is stable so ties
// keep their relative order.
func (s *Store) sortTasks() {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Start < s.tasks[j].Start
	})
}

func (s *Store) notifyConflict(proposed, existing Task) {
	for _, n := range s.notifiers {
		n.TaskConflict(proposed, existing)
	}
}

func (s *Store) notifyUpdated(task Task) {
	for _, n := range s.notifiers {
		n.TaskUpdated(task)
	}
}
