package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/tasklist/pkg/models"
)

const trashIcon = "🗑"

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedEntryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12")).
				Bold(true)

	trashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			MarginLeft(1)

	scrollbarTrackStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("236"))

	scrollbarHandleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// TaskPanel renders the task list entries in a bordered, scrollable box. It
// renders nothing until it has been made visible.
type TaskPanel struct {
	viewport viewport.Model
	entries  []models.TaskEntry
	selected int
	visible  bool
	width    int
	height   int
}

func NewTaskPanel(width, height int) *TaskPanel {
	p := &TaskPanel{}
	p.SetSize(width, height)
	return p
}

// SetSize sets the outer size of the panel, border included.
func (p *TaskPanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	// border + padding + scrollbar column
	vpWidth := width - 5
	if vpWidth < 0 {
		vpWidth = 0
	}
	vpHeight := height - 2
	if vpHeight < 1 {
		vpHeight = 1
	}
	p.viewport = viewport.New(vpWidth, vpHeight)
	p.updateContent()
}

// SetEntries replaces the rendered entries. selected is the index of the
// highlighted entry, or -1.
func (p *TaskPanel) SetEntries(entries []models.TaskEntry, selected int, visible bool) {
	p.entries = entries
	p.selected = selected
	p.visible = visible
	p.updateContent()
}

func (p *TaskPanel) Visible() bool {
	return p.visible
}

func (p *TaskPanel) updateContent() {
	nameWidth := p.viewport.Width - lipgloss.Width(trashIcon) - 3
	if nameWidth < 1 {
		nameWidth = 1
	}

	var lines []string
	for i, e := range p.entries {
		style := entryStyle
		cursor := "  "
		if i == p.selected {
			style = selectedEntryStyle
			cursor = "> "
		}

		wrapped := strings.Split(lipgloss.NewStyle().Width(nameWidth).Render(e.Text), "\n")
		for j, line := range wrapped {
			if j == 0 {
				lines = append(lines, fmt.Sprintf("%s%s%s", cursor, style.Render(line), trashStyle.Render(trashIcon)))
			} else {
				lines = append(lines, "  "+style.Render(line))
			}
		}
	}
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.scrollToSelected(lines)
}

// scrollToSelected keeps the highlighted entry inside the viewport.
func (p *TaskPanel) scrollToSelected(lines []string) {
	if p.selected < 0 {
		return
	}
	row := 0
	for i, line := range lines {
		if strings.HasPrefix(line, "> ") {
			row = i
			break
		}
	}
	if row < p.viewport.YOffset {
		p.viewport.SetYOffset(row)
	} else if row >= p.viewport.YOffset+p.viewport.Height {
		p.viewport.SetYOffset(row - p.viewport.Height + 1)
	}
}

func (p *TaskPanel) View() string {
	if !p.visible {
		return ""
	}

	body := p.viewport.View()
	if p.viewport.TotalLineCount() > p.viewport.Height {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, p.scrollbar())
	}

	width := p.width - 2
	if width < 0 {
		width = 0
	}
	return panelStyle.Width(width).Render(body)
}

func (p *TaskPanel) scrollbar() string {
	h := p.viewport.Height
	handlePos := int(float64(h-1) * p.viewport.ScrollPercent())

	var sb strings.Builder
	for i := 0; i < h; i++ {
		if i == handlePos {
			sb.WriteString(scrollbarHandleStyle.Render("┃"))
		} else {
			sb.WriteString(scrollbarTrackStyle.Render("│"))
		}
		if i < h-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
