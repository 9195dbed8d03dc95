package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/tasklist/internal/dom"
	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/internal/ui/components"
	"github.com/ldi/tasklist/internal/widget"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

const (
	defaultWidth       = 60
	defaultPanelHeight = 12
)

// TaskListModel is the terminal rendition of the task page. The text input
// mirrors the page input field, enter clicks the submit button and ctrl+d
// clicks the trash icon of the highlighted entry.
type TaskListModel struct {
	page      *dom.TaskPage
	scheduler *TickScheduler
	input     textinput.Model
	panel     *components.TaskPanel
	selected  int
	width     int
	height    int
	quitting  bool
}

func NewTaskListModel(logger log.Logger) (*TaskListModel, error) {
	page := dom.NewTaskPage()
	scheduler := NewTickScheduler()

	if _, err := widget.Mount(page.Document, scheduler, logger); err != nil {
		return nil, fmt.Errorf("could not mount task list: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Add your task"
	input.Focus()

	m := &TaskListModel{
		page:      page,
		scheduler: scheduler,
		input:     input,
		panel:     components.NewTaskPanel(defaultWidth, defaultPanelHeight),
		selected:  -1,
		width:     defaultWidth,
	}
	m.syncPanel()

	return m, nil
}

func (m *TaskListModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TaskListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			m.submit()

		case "up":
			if m.selected > 0 {
				m.selected--
			}

		case "down":
			if m.selected < len(m.page.List.Items())-1 {
				m.selected++
			}

		case "ctrl+d", "delete":
			m.deleteSelected()

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case timerFiredMsg:
		m.scheduler.Fire(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		m.panel.SetSize(msg.Width, m.panelHeight())

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncPanel()
	cmds = append(cmds, m.scheduler.Commands())

	return m, tea.Batch(cmds...)
}

// submit copies the typed text into the page and clicks the submit button;
// the page decides whether the field is cleared.
func (m *TaskListModel) submit() {
	m.page.Input.SetValue(m.input.Value())
	m.page.Submit.Activate()

	m.input.SetValue(m.page.Input.Value())
	m.input.CursorEnd()

	if m.selected < 0 && len(m.page.List.Items()) > 0 {
		m.selected = 0
	}
}

func (m *TaskListModel) deleteSelected() {
	items := m.page.List.Items()
	if m.selected < 0 || m.selected >= len(items) {
		return
	}
	items[m.selected].Trash().Activate()

	remaining := len(m.page.List.Items())
	if m.selected >= remaining {
		m.selected = remaining - 1
	}
}

func (m *TaskListModel) syncPanel() {
	m.panel.SetEntries(m.page.List.Entries(), m.selected, m.page.List.Visible())
}

func (m *TaskListModel) panelHeight() int {
	// header, input box, status line, help
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	if h > defaultPanelHeight {
		h = defaultPanelHeight
	}
	return h
}

func (m *TaskListModel) View() string {
	if m.quitting {
		return ""
	}

	inputWidth := m.width - 2
	if inputWidth < 0 {
		inputWidth = 0
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("To-Do List"))
	b.WriteString("\n")
	b.WriteString(inputStyle.Width(inputWidth).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(components.StatusLine(m.page.Status.View()))
	b.WriteString("\n")
	if panel := m.panel.View(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter add • ↑/↓ select • ctrl+d delete • esc quit"))

	return b.String()
}

// RunTaskList runs the terminal task list until the user quits or ctx is done.
func RunTaskList(ctx context.Context, logger log.Logger) error {
	m, err := NewTaskListModel(logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
