package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pdxmph/schedule-tui/internal/config"
	"github.com/pdxmph/schedule-tui/internal/schedule"
)

// Model represents the main application state
type Model struct {
	store    *schedule.Store
	tasks    []schedule.Task
	selected int
	width    int
	height   int
	logger   *log.Logger

	// Outcome of the last operation, shown above the help line
	status string

	// Text filter
	filterMode bool
	filter     textinput.Model

	// Priority filter picker
	priorityFilterMode bool
	prioritySelected   int
	priorityFilter     schedule.Priority // empty means all priorities

	// Add/edit form
	formMode   bool
	formEdit   bool   // editing an existing task rather than adding
	formTarget string // description of the task being edited
	formField  int
	formInputs []textinput.Model

	// Remove confirmation mode
	removeConfirmMode bool
	removeTarget      string

	defaultPriority string

	err error
}

// Priority picker entries; "all" clears the filter.
var priorityChoices = []string{"all", "LOW", "MEDIUM", "HIGH"}

// Form field indices
const (
	FieldDescription = iota
	FieldStart
	FieldEnd
	FieldPriority
	FieldCount // Total number of fields
)

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	mediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// priorityStyle returns the accent style for a priority level.
func priorityStyle(p schedule.Priority) lipgloss.Style {
	switch p {
	case schedule.PriorityHigh:
		return highStyle
	case schedule.PriorityMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}

// New creates a new application model
func New(store *schedule.Store, cfg *config.Config, logger *log.Logger) (*Model, error) {
	// Setup filter input
	ti := textinput.New()
	ti.Placeholder = "Filter tasks..."
	ti.Width = 30
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	// Setup form inputs
	formInputs := make([]textinput.Model, FieldCount)
	for i := range formInputs {
		formInputs[i] = textinput.New()
		formInputs[i].Width = 40
		formInputs[i].CharLimit = 100

		switch i {
		case FieldDescription:
			formInputs[i].Placeholder = "Task description"
		case FieldStart:
			formInputs[i].Placeholder = "Start time (HH:mm)"
		case FieldEnd:
			formInputs[i].Placeholder = "End time (HH:mm)"
		case FieldPriority:
			formInputs[i].Placeholder = "Priority (LOW, MEDIUM, HIGH)"
		}
	}

	defaultPriority := cfg.Schedule.DefaultPriority
	if defaultPriority == "" {
		defaultPriority = string(schedule.PriorityMedium)
	}

	return &Model{
		store:           store,
		tasks:           store.Tasks(),
		logger:          logger,
		filter:          ti,
		formInputs:      formInputs,
		defaultPriority: defaultPriority,
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			listWidth := m.width / 2
			m.filter.Width = listWidth - 4
		}
		return m, nil

	case tea.KeyMsg:
		// Priority filter picker handling
		if m.priorityFilterMode {
			switch msg.String() {
			case "esc":
				m.priorityFilterMode = false
				m.prioritySelected = 0
				return m, nil
			case "enter":
				selected := priorityChoices[m.prioritySelected]
				if selected == "all" {
					m.priorityFilter = ""
				} else {
					m.priorityFilter = schedule.Priority(selected)
				}
				m.priorityFilterMode = false
				m.prioritySelected = 0
				m.selected = m.ensureValidSelection()
				return m, nil
			case "j", "down":
				if m.prioritySelected < len(priorityChoices)-1 {
					m.prioritySelected++
				}
			case "k", "up":
				if m.prioritySelected > 0 {
					m.prioritySelected--
				}
			}
			return m, nil
		}

		// Remove confirmation mode handling
		if m.removeConfirmMode {
			switch msg.String() {
			case "y", "Y":
				m.removeTask(m.removeTarget)
				m.removeConfirmMode = false
				m.removeTarget = ""
				return m, nil
			default:
				// Any other key cancels
				m.removeConfirmMode = false
				m.removeTarget = ""
				return m, nil
			}
		}

		// Form mode handling
		if m.formMode {
			switch msg.String() {
			case "esc":
				m.closeForm()
				return m, nil

			case "enter":
				if m.formField < FieldCount-1 {
					// Advance to the next field
					m.formInputs[m.formField].Blur()
					m.formField++
					m.formInputs[m.formField].Focus()
					return m, textinput.Blink
				}
				// Last field: submit
				if m.submitForm() {
					m.closeForm()
				}
				return m, nil

			case "tab", "down":
				if m.formField < FieldCount-1 {
					m.formInputs[m.formField].Blur()
					m.formField++
					m.formInputs[m.formField].Focus()
				}
				return m, textinput.Blink

			case "shift+tab", "up":
				if m.formField > 0 {
					m.formInputs[m.formField].Blur()
					m.formField--
					m.formInputs[m.formField].Focus()
				}
				return m, textinput.Blink
			}

			// Update the active text input
			var cmd tea.Cmd
			m.formInputs[m.formField], cmd = m.formInputs[m.formField].Update(msg)
			return m, cmd
		}

		// Filter mode handling
		if m.filterMode {
			switch msg.String() {
			case "esc":
				m.filterMode = false
				m.filter.Reset()
				m.selected = m.ensureValidSelection()
				return m, nil
			case "enter":
				m.filterMode = false
				m.selected = m.ensureValidSelection()
				return m, nil
			case "up":
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			case "down":
				if m.selected < len(m.filteredTasks())-1 {
					m.selected++
				}
				return m, nil
			}

			// Pass all other keys to the textinput
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.selected = m.ensureValidSelection()
			return m, cmd
		}

		// Normal mode handling
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.filteredTasks())-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "/":
			m.filterMode = true
			m.filter.Reset()
			m.filter.Focus()
			return m, tea.Batch(textinput.Blink, tea.ClearScreen)

		case "esc":
			// Clear the text filter and return to the full list
			if m.filter.Value() != "" {
				m.filter.Reset()
				m.selected = m.ensureValidSelection()
				return m, nil
			}

		case "a":
			m.openAddForm()
			return m, textinput.Blink

		case "e":
			tasks := m.filteredTasks()
			if len(tasks) > 0 && m.selected < len(tasks) {
				m.openEditForm(tasks[m.selected])
				return m, textinput.Blink
			}

		case "d":
			tasks := m.filteredTasks()
			if len(tasks) > 0 && m.selected < len(tasks) {
				m.removeConfirmMode = true
				m.removeTarget = tasks[m.selected].Description
			}
			return m, nil

		case "c":
			tasks := m.filteredTasks()
			if len(tasks) > 0 && m.selected < len(tasks) {
				m.completeTask(tasks[m.selected].Description)
			}

		case "p":
			m.priorityFilterMode = true
			m.prioritySelected = 0
			// If a filter is already active, select it
			if m.priorityFilter != "" {
				for i, choice := range priorityChoices {
					if choice == string(m.priorityFilter) {
						m.prioritySelected = i
						break
					}
				}
			}
			return m, nil

		case "C":
			// Clear all filters
			m.priorityFilter = ""
			m.filter.Reset()
			m.selected = m.ensureValidSelection()
			return m, nil
		}
	}

	return m, nil
}

// openAddForm resets the form for a new task.
func (m *Model) openAddForm() {
	m.formMode = true
	m.formEdit = false
	m.formTarget = ""
	m.formField = 0
	for i := range m.formInputs {
		m.formInputs[i].Reset()
		m.formInputs[i].Blur()
	}
	m.formInputs[FieldPriority].SetValue(m.defaultPriority)
	m.formInputs[FieldDescription].Focus()
}

// openEditForm prefills the form with the selected task's fields.
func (m *Model) openEditForm(task schedule.Task) {
	m.formMode = true
	m.formEdit = true
	m.formTarget = task.Description
	m.formField = 0
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
	m.formInputs[FieldDescription].SetValue(task.Description)
	m.formInputs[FieldStart].SetValue(task.Start.String())
	m.formInputs[FieldEnd].SetValue(task.End.String())
	m.formInputs[FieldPriority].SetValue(string(task.Priority))
	m.formInputs[FieldDescription].Focus()
}

// closeForm leaves form mode without touching the store.
func (m *Model) closeForm() {
	m.formMode = false
	m.formField = 0
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
}

// submitForm runs the add or edit against the store. Returns true when the
// operation succeeded; on failure the form stays open so the input can be
// corrected.
func (m *Model) submitForm() bool {
	description := m.formInputs[FieldDescription].Value()
	start := m.formInputs[FieldStart].Value()
	end := m.formInputs[FieldEnd].Value()
	priority := m.formInputs[FieldPriority].Value()

	if m.formEdit {
		if err := m.store.Edit(m.formTarget, description, start, end, priority); err != nil {
			m.status = "Error: " + userMessage(err)
			m.logger.Warn("edit task failed", "task", m.formTarget, "err", err)
			return false
		}
		m.status = fmt.Sprintf("Updated %q", strings.TrimSpace(description))
		m.logger.Info("task edited", "from", m.formTarget, "to", description)
	} else {
		task, err := schedule.NewTask(description, start, end, priority)
		if err == nil {
			err = m.store.Add(task)
		}
		if err != nil {
			m.status = "Error: " + userMessage(err)
			m.logger.Warn("add task failed", "task", description, "err", err)
			return false
		}
		m.status = fmt.Sprintf("Added %q, no conflicts", task.Description)
		m.logger.Info("task added", "task", task.Description)
	}

	m.refresh()
	return true
}

// removeTask deletes a task by description.
func (m *Model) removeTask(description string) {
	if err := m.store.Remove(description); err != nil {
		m.status = "Error: " + userMessage(err)
		m.logger.Warn("remove task failed", "task", description, "err", err)
		return
	}
	m.status = fmt.Sprintf("Removed %q", description)
	m.logger.Info("task removed", "task", description)
	m.refresh()
}

// completeTask marks a task as done by description.
func (m *Model) completeTask(description string) {
	if err := m.store.MarkCompleted(description); err != nil {
		m.status = "Error: " + userMessage(err)
		m.logger.Warn("complete task failed", "task", description, "err", err)
		return
	}
	m.status = fmt.Sprintf("Completed %q", description)
	m.logger.Info("task completed", "task", description)
	m.refresh()
}

// refresh reloads the task snapshot from the store.
func (m *Model) refresh() {
	m.tasks = m.store.Tasks()
	m.selected = m.ensureValidSelection()
}

// userMessage translates store errors into the messages shown on the
// status line.
func userMessage(err error) string {
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict):
		return fmt.Sprintf("task conflicts with existing task %q", conflict.ConflictsWith)
	case errors.Is(err, schedule.ErrInvalidClock):
		return "invalid time format, use HH:mm (e.g. 09:00)"
	case errors.Is(err, schedule.ErrInvalidInterval):
		return "start time must be before end time"
	case errors.Is(err, schedule.ErrInvalidPriority):
		return "priority must be LOW, MEDIUM or HIGH"
	case errors.Is(err, schedule.ErrEmptyDescription):
		return "task description must not be empty"
	case errors.Is(err, schedule.ErrNotFound):
		return "no task with that description"
	}
	return err.Error()
}

// filteredTasks returns tasks matching the current filters
func (m Model) filteredTasks() []schedule.Task {
	tasks := m.tasks

	// Apply priority filter
	if m.priorityFilter != "" {
		tasks = m.store.TasksByPriority(m.priorityFilter)
	}

	// Apply text filter if present
	if m.filter.Value() == "" {
		return tasks
	}

	filter := strings.ToLower(m.filter.Value())
	var filtered []schedule.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Description), filter) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	tasks := m.filteredTasks()
	if len(tasks) == 0 {
		return 0
	}
	if m.selected >= len(tasks) {
		return len(tasks) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Calculate pane widths
	listWidth := m.width / 2
	detailWidth := m.width - listWidth - 3
	paneHeight := m.height - 4

	listView := m.renderList(listWidth, paneHeight)
	detailView := m.renderDetail(detailWidth, paneHeight)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(listWidth).Height(paneHeight).Render(listView),
		borderStyle.Width(detailWidth).Height(paneHeight).Render(detailView),
	)

	statusLine := " "
	if m.status != "" {
		statusLine = statusStyle.Render(" " + m.status)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, content, statusLine, m.renderHelp())

	// Overlay priority selection if in picker mode
	if m.priorityFilterMode {
		return m.renderPrioritySelection()
	}

	// Overlay the add/edit form if active
	if m.formMode {
		return m.renderForm()
	}

	// Overlay remove confirmation if active
	if m.removeConfirmMode {
		return m.renderRemoveConfirmation()
	}

	return view
}

// renderList renders the schedule list
func (m Model) renderList(width, height int) string {
	var lines []string

	if m.filterMode {
		filterView := m.filter.View()
		if filterView == "" {
			filterView = "> " + m.filter.Placeholder
		}
		lines = append(lines, filterView)
		lines = append(lines, "")
		height -= 2
	}

	tasks := m.filteredTasks()

	// Calculate visible range
	visibleHeight := height - 2 // account for header
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	// Header
	header := fmt.Sprintf("Schedule (%d)", len(tasks))

	var filterIndicators []string
	if m.priorityFilter != "" {
		filterIndicators = append(filterIndicators, "priority:"+string(m.priorityFilter))
	}
	if m.filter.Value() != "" {
		filterIndicators = append(filterIndicators, "text:"+m.filter.Value())
	}
	if len(filterIndicators) > 0 {
		header += " [" + strings.Join(filterIndicators, ", ") + "]"
	}

	lines = append(lines, header)
	lines = append(lines, strings.Repeat("─", width-2))

	if len(tasks) == 0 {
		lines = append(lines, "No tasks scheduled for the day.")
		return strings.Join(lines, "\n")
	}

	for i := startIdx; i < len(tasks) && i < startIdx+visibleHeight; i++ {
		t := tasks[i]

		marker := priorityStyle(t.Priority).Render("•") + " "
		if t.Completed {
			marker = completedStyle.Render("✓") + " "
		}

		line := t.String()
		if i == m.selected {
			line = marker + selectedStyle.Render(line)
		} else if t.Completed {
			line = marker + completedStyle.Render(line)
		} else {
			line = marker + line
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders the task detail view
func (m Model) renderDetail(width, height int) string {
	tasks := m.filteredTasks()
	if len(tasks) == 0 || m.selected >= len(tasks) {
		return "No task selected"
	}

	t := tasks[m.selected]
	var lines []string

	lines = append(lines, t.Description)
	lines = append(lines, strings.Repeat("─", width-2))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Time:     %s - %s", t.Start, t.End))
	lines = append(lines, fmt.Sprintf("Duration: %s", formatDuration(t.Start, t.End)))
	lines = append(lines, "Priority: "+priorityStyle(t.Priority).Render(string(t.Priority)))

	status := "Pending"
	if t.Completed {
		status = "Completed"
	}
	lines = append(lines, fmt.Sprintf("Status:   %s", status))

	return strings.Join(lines, "\n")
}

// formatDuration renders the span between two clocks, e.g. "1h30m".
func formatDuration(start, end schedule.Clock) string {
	mins := int(end - start)
	switch {
	case mins < 60:
		return fmt.Sprintf("%dm", mins)
	case mins%60 == 0:
		return fmt.Sprintf("%dh", mins/60)
	default:
		return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
	}
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.removeConfirmMode {
		return " y: confirm remove • any other key: cancel"
	}

	if m.priorityFilterMode {
		return " j/k: navigate • Enter: select • Esc: cancel"
	}

	if m.formMode {
		return " Tab/↓: next field • Shift+Tab/↑: previous • Enter: next/save • Esc: cancel"
	}

	if m.filterMode {
		return " Type to filter • ↑/↓: navigate • Enter: confirm • Esc: cancel"
	}

	help := " j/k: navigate • a: add • e: edit • d: remove • c: complete • p: priority • /: filter"

	if m.priorityFilter != "" || m.filter.Value() != "" {
		help += " • C: clear all"
	}

	help += " • q: quit"

	return help
}

// renderPrioritySelection renders the priority filter picker overlay
func (m Model) renderPrioritySelection() string {
	var lines []string
	lines = append(lines, "Filter by priority:")
	lines = append(lines, "")

	for i, choice := range priorityChoices {
		line := fmt.Sprintf("  %s", choice)
		if choice == "all" {
			line = "  all (clear filter)"
		}
		if i == m.prioritySelected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, "Press Enter to confirm, Esc to cancel")

	return m.centeredBox(strings.Join(lines, "\n"), 0)
}

// renderForm renders the add/edit form overlay
func (m Model) renderForm() string {
	var lines []string

	if m.formEdit {
		lines = append(lines, fmt.Sprintf("Edit Task: %s", m.formTarget))
	} else {
		lines = append(lines, "Add Task")
	}
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	fieldLabels := []string{
		"Description: ",
		"Start:       ",
		"End:         ",
		"Priority:    ",
	}

	for i, label := range fieldLabels {
		var fieldView string
		if i == m.formField {
			fieldView = label + m.formInputs[i].View()
		} else {
			value := m.formInputs[i].Value()
			if value == "" {
				value = m.formInputs[i].Placeholder
			}
			fieldView = label + value
		}
		lines = append(lines, fieldView)
		lines = append(lines, "")
	}

	if m.status != "" && strings.HasPrefix(m.status, "Error:") {
		lines = append(lines, statusStyle.Render(m.status))
		lines = append(lines, "")
	}

	lines = append(lines, "Tab/↓: next field • Shift+Tab/↑: previous • Enter: next/save • Esc: cancel")

	return m.centeredBox(strings.Join(lines, "\n"), 64)
}

// renderRemoveConfirmation renders the remove confirmation prompt
func (m Model) renderRemoveConfirmation() string {
	width := 60
	height := 7

	prompt := fmt.Sprintf("Remove task %q? (y/n)", m.removeTarget)

	content := lipgloss.NewStyle().
		Width(width - 4).
		Height(height - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(width).
		Height(height).
		Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// centeredBox wraps content in a bordered box centered on the screen.
func (m Model) centeredBox(content string, width int) string {
	style := borderStyle.
		Padding(1).
		Background(lipgloss.Color("235"))
	if width > 0 {
		style = style.Width(width)
	}
	box := style.Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
