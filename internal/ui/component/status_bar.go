package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-tui/internal/dashboard"
	"github.com/leighmacdonald/fpl-tui/internal/ui/command"
	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
)

type statusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	visible     int
	total       int
	loaded      bool
	version     string
}

func NewStatusBarModel(version string) *statusBarModel {
	return &statusBarModel{version: version}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboard.State:
		m.loaded = msg.Loaded
		m.total = len(msg.Players)
		m.visible = len(msg.Visible())
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m statusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		m.count(),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) count() string {
	if !m.loaded {
		return styles.StatusCount.Render(styles.IconLoading)
	}

	return styles.StatusCount.Render(fmt.Sprintf("%s %d/%d players", styles.IconPlayers, m.visible, m.total))
}

func (m statusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
