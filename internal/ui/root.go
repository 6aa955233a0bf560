package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/config"
	"github.com/leighmacdonald/fpl-tui/internal/dashboard"
	"github.com/leighmacdonald/fpl-tui/internal/ui/command"
	"github.com/leighmacdonald/fpl-tui/internal/ui/component"
	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	"github.com/leighmacdonald/fpl-tui/internal/ui/pages"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// BuildInfo describes the running binary for the help page and status bar.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// rootModel is the top level model for the ui side of the app. It owns the dashboard state
// and is the only model that transitions it, children receive a fresh copy after each change.
type rootModel struct {
	ctx          context.Context //nolint:containedctx
	source       command.Source
	state        dashboard.State
	viewState    model.ViewState
	mainModel    tea.Model
	detailModel  tea.Model
	helpModel    tea.Model
	statusModel  tea.Model
	footerHeight int
}

func newRootModel(ctx context.Context, source command.Source, metrics chart.Selection, build BuildInfo,
	configPath string, exportDir string,
) *rootModel {
	return &rootModel{
		ctx:          ctx,
		source:       source,
		state:        dashboard.New(metrics),
		viewState:    model.ViewState{Page: model.PageTable, KeyZone: model.KZplayerTable},
		mainModel:    pages.NewMain(),
		detailModel:  component.NewDetailModel(exportDir),
		helpModel:    pages.NewHelp(build.Version, build.Date, build.Commit, configPath, exportDir),
		statusModel:  component.NewStatusBarModel(build.Version),
		footerHeight: 1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fpl-tui"),
		textinput.Blink,
		m.mainModel.Init(),
		m.detailModel.Init(),
		m.helpModel.Init(),
		m.statusModel.Init(),
		command.FetchBootstrap(m.ctx, m.source),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.viewState.Lower = m.footerHeight
		m.viewState.Upper = max(0, msg.Height-m.footerHeight)

		return m.propagate(m.viewState)
	case model.ViewState:
		m.viewState = msg
	case model.KeyZone:
		m.viewState.KeyZone = msg

		return m.propagate(m.viewState)
	case tea.KeyMsg:
		return m.onKey(msg)
	case config.Config:
		slog.Info("Configuration reloaded")

		return m, command.SetStatusMessage("Configuration reloaded", false)
	case command.BootstrapMsg:
		if msg.Err != nil {
			return m, command.SetStatusMessage("Failed to load players: "+msg.Err.Error(), true)
		}

		m.state = m.state.BootstrapLoaded(msg.Bootstrap)

		return m.propagate(m.state)
	case command.DetailMsg:
		if msg.Err != nil {
			m.state = m.state.DetailFailed(msg.PlayerID)

			return m.propagate(m.state, command.SetStatusMessage("Failed to load player history: "+msg.Err.Error(), true))
		}

		m.state = m.state.DetailLoaded(msg.PlayerID, msg.History)

		return m.propagate(m.state)
	case command.SelectPlayerMsg:
		var fetch bool
		m.state, fetch = m.state.Select(msg.PlayerID)
		m.viewState.Page = model.PageDetail
		m.viewState.KeyZone = model.KZplayerTable

		var fetchCmd tea.Cmd
		if fetch {
			fetchCmd = command.FetchDetail(m.ctx, m.source, msg.PlayerID)
		}

		return m.propagate(m.state, command.SetViewState(m.viewState), fetchCmd)
	case command.BackMsg:
		m.state = m.state.Back()
		m.viewState.Page = model.PageTable

		return m.propagate(m.state, command.SetViewState(m.viewState))
	case command.SortMsg:
		m.state = m.state.ToggleSort(msg.Key)

		return m.propagate(m.state)
	case command.SearchMsg:
		m.state = m.state.WithSearch(msg.Search)

		return m.propagate(m.state)
	case command.TeamMsg:
		m.state = m.state.WithTeam(msg.Team)

		return m.propagate(m.state)
	case command.PositionMsg:
		m.state = m.state.WithPosition(msg.Position)

		return m.propagate(m.state)
	case command.BoundMsg:
		m.state = m.state.WithBound(msg.Key, msg.Bound)

		return m.propagate(m.state)
	case command.ResetFiltersMsg:
		m.state = m.state.ResetCriteria()

		return m.propagate(m.state)
	case command.ToggleMetricMsg:
		m.state = m.state.ToggleMetric(msg.Key)

		return m.propagate(m.state)
	}

	return m.propagate(inMsg)
}

// typing is true while a filter input owns the keyboard.
func (m rootModel) typing() bool {
	return m.viewState.Page == model.PageTable && m.viewState.KeyZone != model.KZplayerTable
}

func (m rootModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.viewState.Page == model.PageTable {
		switch {
		case key.Matches(msg, input.Default.NextField):
			return m, command.SetNextZone(m.viewState.KeyZone, input.Next)
		case key.Matches(msg, input.Default.PrevField):
			return m, command.SetNextZone(m.viewState.KeyZone, input.Previous)
		}
	}

	if m.typing() {
		return m.propagate(msg)
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		return m, tea.Quit
	case key.Matches(msg, input.Default.Help) && m.viewState.Page != model.PageHelp:
		m.viewState.Page = model.PageHelp

		return m.propagate(m.viewState)
	case key.Matches(msg, input.Default.Reset) && m.viewState.Page == model.PageTable:
		return m, func() tea.Msg { return command.ResetFiltersMsg{} }
	}

	return m.propagate(msg)
}

func (m rootModel) View() string {
	var content string

	switch m.viewState.Page {
	case model.PageTable:
		content = m.mainModel.View()
	case model.PageDetail:
		content = m.detailModel.View()
	case model.PageHelp:
		content = m.helpModel.View()
	}

	ctr := styles.ContentContainerStyle.Height(m.viewState.Upper).Render(content)
	ftr := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.statusModel.View())

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, ftr))
}

func (m rootModel) propagate(msg tea.Msg, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	childCmds := make([]tea.Cmd, 4)

	m.mainModel, childCmds[0] = m.mainModel.Update(msg)
	m.detailModel, childCmds[1] = m.detailModel.Update(msg)
	m.helpModel, childCmds[2] = m.helpModel.Update(msg)
	m.statusModel, childCmds[3] = m.statusModel.Update(msg)

	return m, tea.Batch(append(childCmds, cmds...)...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/fpl-tui/fpl-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch msg := inMsg.(type) {
	case tea.MouseMsg:
		break
	case command.BootstrapMsg:
		slog.Debug("tea.Msg", slog.String("type", "bootstrap"), slog.Int("players", len(msg.Bootstrap.Elements)))
	case command.DetailMsg:
		slog.Debug("tea.Msg", slog.String("type", "detail"), slog.Int("player_id", msg.PlayerID),
			slog.Int("rounds", len(msg.History)))
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
