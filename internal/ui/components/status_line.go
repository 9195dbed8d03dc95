package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ldi/tasklist/pkg/models"
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Italic(true).
	Padding(0, 1)

// StatusLine renders the error area. A hidden status renders as an empty line
// so the layout below does not jump.
func StatusLine(status models.StatusView) string {
	if !status.Visible || status.Text == "" {
		return ""
	}
	return errorStyle.Render(status.Text)
}
