package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-tui/internal/ui/component"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
)

func NewMain() *Main {
	return &Main{
		filterBarModel:   component.NewFilterBarModel(),
		playerTableModel: component.NewPlayerTableModel(),
	}
}

// Main is the player table page: the filter bar stacked above the table.
type Main struct {
	filterBarModel   tea.Model
	playerTableModel tea.Model
	viewState        model.ViewState
}

func (m *Main) Init() tea.Cmd {
	return tea.Batch(m.filterBarModel.Init(), m.playerTableModel.Init())
}

func (m *Main) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var filterCmd, tableCmd tea.Cmd

	if viewState, ok := msg.(model.ViewState); ok {
		m.viewState = viewState
		m.filterBarModel, filterCmd = m.filterBarModel.Update(viewState)

		// The table only gets the space left below the filter bar.
		viewState.Upper = max(0, viewState.Upper-component.FilterBarHeight)
		m.playerTableModel, tableCmd = m.playerTableModel.Update(viewState)

		return m, tea.Batch(filterCmd, tableCmd)
	}

	m.filterBarModel, filterCmd = m.filterBarModel.Update(msg)
	m.playerTableModel, tableCmd = m.playerTableModel.Update(msg)

	return m, tea.Batch(filterCmd, tableCmd)
}

func (m *Main) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.filterBarModel.View(), m.playerTableModel.View())
}
