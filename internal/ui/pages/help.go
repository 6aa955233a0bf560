package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-tui/internal/ui/command"
	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, exportPath string) Help {
	return Help{
		helpView:     help.New(),
		configPath:   configPath,
		exportPath:   exportPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	previous     model.Page
	configPath   string
	exportPath   string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewState.Page == model.PageHelp && key.Matches(msg, input.Default.Back, input.Default.Help) {
			m.viewState.Page = m.previous

			return m, command.SetViewState(m.viewState)
		}
	case model.ViewState:
		if msg.Page == model.PageHelp && m.viewState.Page != model.PageHelp {
			m.previous = m.viewState.Page
		}

		m.viewState = msg
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Quit,
			input.Default.Help,
			input.Default.Back,
			input.Default.Accept,
			input.Default.NextField,
			input.Default.PrevField,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Search,
			input.Default.Team,
			input.Default.Position,
			input.Default.Sort,
			input.Default.Reset,
			input.Default.BoundPrevStat,
			input.Default.BoundNextStat,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
			input.Default.Left,
			input.Default.Right,
			input.Default.Export,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.buildCommit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Export Path", m.exportPath),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.Upper, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
