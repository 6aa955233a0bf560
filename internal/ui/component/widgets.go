package component

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

func NewTextInputModel(value string, placeholder string, width int) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = 64
	input.Width = width
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func NewUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(true).
		Headers(headers...)
}

// clip shortens value to width cells, marking the cut with an ellipsis.
func clip(value string, width int) string {
	if width <= 0 || lipgloss.Width(value) <= width {
		return value
	}

	return truncate.StringWithTail(value, uint(width), "…") //nolint:gosec
}
