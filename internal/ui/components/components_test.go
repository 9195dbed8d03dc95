package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/ldi/tasklist/pkg/models"
)

func entries(texts ...string) []models.TaskEntry {
	out := make([]models.TaskEntry, 0, len(texts))
	for i, t := range texts {
		out = append(out, models.TaskEntry{ID: fmt.Sprintf("id-%d", i), Text: t})
	}
	return out
}

func TestTaskPanelHiddenUntilVisible(t *testing.T) {
	p := NewTaskPanel(40, 10)
	assert.Equal(t, "", p.View())

	p.SetEntries(nil, -1, true)
	assert.NotEqual(t, "", p.View())
}

func TestTaskPanelOrderAndTrash(t *testing.T) {
	p := NewTaskPanel(40, 10)
	p.SetEntries(entries("first", "second", "third"), 1, true)

	view := p.View()
	first := strings.Index(view, "first")
	second := strings.Index(view, "second")
	third := strings.Index(view, "third")

	assert.True(t, first >= 0 && first < second && second < third, "entries out of order: %d %d %d", first, second, third)
	assert.Equal(t, 3, strings.Count(view, trashIcon))
	assert.Contains(t, view, "> ")
}

func TestTaskPanelWidth(t *testing.T) {
	width := 24
	p := NewTaskPanel(width, 10)
	p.SetEntries(entries("a task with a rather long description that must wrap"), 0, true)

	for _, line := range strings.Split(p.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), width, "line too wide: %q", line)
	}
}

func TestTaskPanelScrollbar(t *testing.T) {
	p := NewTaskPanel(30, 5)
	var texts []string
	for i := 0; i < 10; i++ {
		texts = append(texts, fmt.Sprintf("task %d", i))
	}
	p.SetEntries(entries(texts...), 9, true)

	view := p.View()
	assert.Contains(t, view, "┃")
	assert.Contains(t, view, "task 9")
}

func TestTaskPanelNoScrollbar(t *testing.T) {
	p := NewTaskPanel(30, 10)
	p.SetEntries(entries("short"), 0, true)

	assert.NotContains(t, p.View(), "┃")
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "", StatusLine(models.StatusView{}))
	assert.Equal(t, "", StatusLine(models.StatusView{Text: "x", Visible: false}))
	assert.Contains(t, StatusLine(models.StatusView{Text: models.RejectionMessage, Visible: true}), models.RejectionMessage)
}
