package model

import (
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
)

// Container draws a titled border around content. Width and height include the border.
func Container(title string, width int, height int, content string, active bool) string {
	innerWidth, innerHeight := width-2, height-2
	if innerHeight <= 0 || innerWidth <= 0 {
		return ""
	}

	base := styles.ContainerStyle
	if active {
		base = styles.ContainerStyleActive
	}

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, innerWidth, styles.ContainerTitle.Render(title))).
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(content)
}
