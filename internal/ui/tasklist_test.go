package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/pkg/models"
)

func newTestTaskList(t *testing.T) *TaskListModel {
	t.Helper()
	m, err := NewTaskListModel(log.Noop)
	require.NoError(t, err)
	return m
}

func typeText(m *TaskListModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func pressEnter(m *TaskListModel) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func texts(m *TaskListModel) []string {
	out := []string{}
	for _, e := range m.page.List.Entries() {
		out = append(out, e.Text)
	}
	return out
}

func TestTaskListAddTrimmed(t *testing.T) {
	m := newTestTaskList(t)

	typeText(m, " Buy milk ")
	pressEnter(m)

	assert.Equal(t, []string{"Buy milk"}, texts(m))
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 0, m.selected)
	assert.Contains(t, m.View(), "Buy milk")
}

func TestTaskListKeepsLongText(t *testing.T) {
	m := newTestTaskList(t)
	long := strings.Repeat("x", 250)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(long), Paste: true})
	pressEnter(m)

	assert.Equal(t, []string{long}, texts(m))
	assert.Equal(t, "", m.input.Value())
}

func TestTaskListPanelHiddenInitially(t *testing.T) {
	m := newTestTaskList(t)

	assert.False(t, m.panel.Visible())
	assert.NotContains(t, m.View(), "┌")
}

func TestTaskListRejectEmpty(t *testing.T) {
	m := newTestTaskList(t)

	typeText(m, "   ")
	cmd := pressEnter(m)

	assert.Empty(t, texts(m))
	assert.Equal(t, "   ", m.input.Value())
	assert.Contains(t, m.View(), models.RejectionMessage)
	assert.Equal(t, 1, m.scheduler.Pending())
	assert.NotNil(t, cmd)
}

func TestTaskListRejectionClearsOnTick(t *testing.T) {
	m := newTestTaskList(t)

	pressEnter(m)
	pressEnter(m)

	// The first tick was superseded by the second rejection.
	require.Equal(t, 1, m.scheduler.Pending())
	m.Update(timerFiredMsg{id: 1})
	assert.Contains(t, m.View(), models.RejectionMessage)

	m.Update(timerFiredMsg{id: 2})
	assert.NotContains(t, m.View(), models.RejectionMessage)
	assert.Equal(t, 0, m.scheduler.Pending())
}

func TestTaskListAcceptClearsError(t *testing.T) {
	m := newTestTaskList(t)

	pressEnter(m)
	require.Contains(t, m.View(), models.RejectionMessage)

	typeText(m, "task")
	pressEnter(m)
	assert.NotContains(t, m.View(), models.RejectionMessage)
	assert.Equal(t, 0, m.scheduler.Pending())
}

func TestTaskListDeleteSelected(t *testing.T) {
	m := newTestTaskList(t)

	for _, text := range []string{"A", "B", "C"} {
		typeText(m, text)
		pressEnter(m)
	}
	require.Equal(t, []string{"A", "B", "C"}, texts(m))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, []string{"A", "C"}, texts(m))
	assert.Equal(t, 1, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, []string{"A"}, texts(m))
	assert.Equal(t, 0, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Empty(t, texts(m))
	assert.Equal(t, -1, m.selected)

	// Nothing left to delete.
	m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Empty(t, texts(m))

	// The panel stays on screen once shown.
	assert.True(t, m.panel.Visible())
}

func TestTaskListSelectionBounds(t *testing.T) {
	m := newTestTaskList(t)

	typeText(m, "A")
	pressEnter(m)
	typeText(m, "B")
	pressEnter(m)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selected)

	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 1, m.selected)
}

func TestTaskListQuit(t *testing.T) {
	m := newTestTaskList(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}

func TestTaskListResize(t *testing.T) {
	m := newTestTaskList(t)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	typeText(m, strings.Repeat("long ", 20))
	pressEnter(m)

	assert.Equal(t, 40, m.width)
	for _, line := range strings.Split(m.panel.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, "line too wide: %q", line)
	}
}
