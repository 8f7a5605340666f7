package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pdxmph/schedule-tui/internal/config"
	"github.com/pdxmph/schedule-tui/internal/schedule"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	store := schedule.NewStore()
	for _, args := range [][4]string{
		{"Exercise", "07:00", "08:00", "HIGH"},
		{"Standup", "09:30", "09:45", "MEDIUM"},
		{"Lunch", "12:00", "13:00", "LOW"},
	} {
		task, err := schedule.NewTask(args[0], args[1], args[2], args[3])
		if err != nil {
			t.Fatalf("NewTask failed: %v", err)
		}
		if err := store.Add(task); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	model, err := New(store, config.Default(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return model
}

func TestFilteredTasksByPriority(t *testing.T) {
	m := newTestModel(t)

	m.priorityFilter = schedule.PriorityHigh
	tasks := m.filteredTasks()
	if len(tasks) != 1 || tasks[0].Description != "Exercise" {
		t.Errorf("filteredTasks() = %v, want only Exercise", tasks)
	}

	m.priorityFilter = ""
	if got := len(m.filteredTasks()); got != 3 {
		t.Errorf("filteredTasks() without filter returned %d tasks, want 3", got)
	}
}

func TestFilteredTasksByText(t *testing.T) {
	m := newTestModel(t)

	m.filter.SetValue("lun")
	tasks := m.filteredTasks()
	if len(tasks) != 1 || tasks[0].Description != "Lunch" {
		t.Errorf("filteredTasks() = %v, want only Lunch", tasks)
	}
}

func TestSubmitFormAddAndConflict(t *testing.T) {
	m := newTestModel(t)

	m.openAddForm()
	m.formInputs[FieldDescription].SetValue("Reading")
	m.formInputs[FieldStart].SetValue("20:00")
	m.formInputs[FieldEnd].SetValue("21:00")
	m.formInputs[FieldPriority].SetValue("LOW")

	if !m.submitForm() {
		t.Fatalf("submitForm failed: %s", m.status)
	}
	if m.store.Len() != 4 {
		t.Errorf("store has %d tasks after add, want 4", m.store.Len())
	}

	// A conflicting add keeps the form open and reports the blocker.
	m.openAddForm()
	m.formInputs[FieldDescription].SetValue("Meeting")
	m.formInputs[FieldStart].SetValue("07:30")
	m.formInputs[FieldEnd].SetValue("08:30")
	m.formInputs[FieldPriority].SetValue("MEDIUM")

	if m.submitForm() {
		t.Fatal("conflicting submitForm succeeded, want failure")
	}
	if !strings.Contains(m.status, "Exercise") {
		t.Errorf("status %q does not name the conflicting task", m.status)
	}
	if m.store.Len() != 4 {
		t.Errorf("failed add changed the store: %d tasks", m.store.Len())
	}
}

func TestSubmitFormEditPreservesTarget(t *testing.T) {
	m := newTestModel(t)

	m.openEditForm(m.tasks[0]) // Exercise
	m.formInputs[FieldStart].SetValue("06:00")
	m.formInputs[FieldEnd].SetValue("06:45")

	if !m.submitForm() {
		t.Fatalf("submitForm failed: %s", m.status)
	}

	tasks := m.store.Tasks()
	if tasks[0].Description != "Exercise" || tasks[0].Start.String() != "06:00" {
		t.Errorf("edit result = %v, want Exercise moved to 06:00", tasks[0])
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "conflict names blocker",
			err:  &schedule.ConflictError{Description: "Meeting", ConflictsWith: "Exercise"},
			want: "Exercise",
		},
		{name: "invalid clock", err: schedule.ErrInvalidClock, want: "HH:mm"},
		{name: "invalid interval", err: schedule.ErrInvalidInterval, want: "before end"},
		{name: "invalid priority", err: schedule.ErrInvalidPriority, want: "LOW, MEDIUM or HIGH"},
		{name: "not found", err: schedule.ErrNotFound, want: "no task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); !strings.Contains(got, tt.want) {
				t.Errorf("userMessage() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		start, end schedule.Clock
		want       string
	}{
		{start: 0, end: 45, want: "45m"},
		{start: 0, end: 60, want: "1h"},
		{start: 7 * 60, end: 8*60 + 30, want: "1h30m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.start, tt.end); got != tt.want {
			t.Errorf("formatDuration(%s, %s) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
