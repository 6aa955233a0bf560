package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#00ff87")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Purple)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")

	Red    = lipgloss.Color("#e90052")
	Purple = lipgloss.Color("#963cff")
	Green  = lipgloss.Color("#00ff87")
	Cyan   = lipgloss.Color("#04f5ff")

	HeaderStyle         = lipgloss.NewStyle().Foreground(Cyan).Bold(true).Align(lipgloss.Left).PaddingRight(1)
	HeaderStyleSorted   = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Left).PaddingRight(1)
	HeaderStyleSelected = HeaderStyle.Underline(true)

	SelectedCellStyle = lipgloss.NewStyle().Bold(true).Background(Purple).Foreground(Black).PaddingRight(1)
	TableRow          = lipgloss.NewStyle().Foreground(White).PaddingRight(1)
	TableRowOdd       = lipgloss.NewStyle().Foreground(Whiter).PaddingRight(1)
	TableRowUnknown   = lipgloss.NewStyle().Foreground(Gray).PaddingRight(1)

	FilterLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingRight(1)
	FilterValue  = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(2)
	FilterActive = lipgloss.NewStyle().Foreground(Cyan).PaddingRight(1)

	MetricEnabled  = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	MetricDisabled = lipgloss.NewStyle().Foreground(Gray).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusCount   = lipgloss.NewStyle().Foreground(Cyan).Bold(true).PaddingLeft(1).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Purple).Bold(true).Align(lipgloss.Center).PaddingRight(2)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconLoading = "⏳"
	IconPlayers = "👥"
	IconChart   = "📈"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
