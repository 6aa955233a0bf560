package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/dashboard"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/ui/command"
	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const sparkWidth = 38

func NewDetailModel(exportDir string) *DetailModel {
	return &DetailModel{
		id:        zone.NewPrefix(),
		viewport:  viewport.New(0, 0),
		exportDir: exportDir,
		teams:     fpl.Teams{},
	}
}

// DetailModel shows the selected player's history with the selected metrics drawn as
// sparklines above the gameweek table.
type DetailModel struct {
	id        string
	viewport  viewport.Model
	exportDir string
	player    fpl.Player
	selected  bool
	teams     fpl.Teams
	history   []fpl.GameweekEntry
	loaded    bool
	pending   bool
	metrics   chart.Selection
	series    []chart.Series
	viewState model.ViewState
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.resize()
	case dashboard.State:
		m.player, m.selected = msg.SelectedPlayer()
		m.teams = msg.Teams
		m.history, m.loaded = msg.Detail(msg.Selected)
		m.pending = msg.IsPending(msg.Selected)
		m.metrics = msg.Metrics
		m.series = msg.Series()
		m.resize()
		m.viewport.SetContent(m.historyTable())
	case tea.MouseMsg:
		if m.viewState.Page != model.PageDetail {
			break
		}

		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for _, metric := range fpl.ChartMetrics {
				if zone.Get(m.id + metric.Key).InBounds(msg) {
					return m, command.ToggleMetric(metric.Key)
				}
			}
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		if m.viewState.Page != model.PageDetail {
			break
		}

		return m, m.onKey(msg)
	}

	return m, nil
}

func (m *DetailModel) onKey(msg tea.KeyMsg) tea.Cmd {
	for idx, binding := range input.Default.ToggleMetric {
		if idx < len(fpl.ChartMetrics) && key.Matches(msg, binding) {
			return command.ToggleMetric(fpl.ChartMetrics[idx].Key)
		}
	}

	switch {
	case key.Matches(msg, input.Default.Back):
		return command.Back()
	case key.Matches(msg, input.Default.Export):
		if !m.loaded || len(m.series) == 0 {
			return command.SetStatusMessage("Nothing to export", true)
		}

		return command.ExportChart(m.exportDir, m.player, m.series)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return cmd
}

// headerHeight is the number of lines rendered above the history table.
func (m *DetailModel) headerHeight() int {
	return lipgloss.Height(m.header())
}

func (m *DetailModel) resize() {
	m.viewport.Width = max(0, m.viewState.Width-2)
	m.viewport.Height = max(0, m.viewState.Upper-m.headerHeight()-2)
}

func (m *DetailModel) header() string {
	position := m.player.ElementType.String()
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.FilterValue.Render(m.player.Name()),
		styles.FilterLabel.Render(m.teams.Name(m.player.Team)),
		styles.FilterLabel.Render(position),
		styles.FilterLabel.Render("£"+m.player.NowCost.Map(fpl.Tenths).Fixed(1)+"m"))

	return lipgloss.JoinVertical(lipgloss.Left, title, m.metricToggles(), m.sparklines())
}

func (m *DetailModel) metricToggles() string {
	toggles := make([]string, len(fpl.ChartMetrics))
	for idx, metric := range fpl.ChartMetrics {
		hotkey := ""
		if idx < len(input.Default.ToggleMetric) {
			hotkey = input.Default.ToggleMetric[idx].Help().Key + " "
		}

		label := "[ ] " + hotkey + metric.Label
		style := styles.MetricDisabled
		if m.metrics.Contains(metric.Key) {
			label = "[x] " + hotkey + metric.Label
			style = styles.MetricEnabled.Foreground(lipgloss.Color(chart.Color(metric.Key)))
		}

		toggles[idx] = zone.Mark(m.id+metric.Key, style.Render(label))
	}

	return lipgloss.NewStyle().Width(max(0, m.viewState.Width-2)).Render(strings.Join(toggles, ""))
}

func (m *DetailModel) sparklines() string {
	switch {
	case m.pending && !m.loaded:
		return styles.InfoMessage.Render(styles.IconLoading + " Loading history...")
	case !m.loaded:
		return styles.InfoMessage.Render("History unavailable, press esc and select the player again to retry")
	case len(m.history) == 0:
		return styles.InfoMessage.Render("No gameweeks played")
	case len(m.series) == 0:
		return styles.InfoMessage.Render("Select a metric to chart")
	}

	rows := make([]string, len(m.series))
	for idx, series := range m.series {
		summary := series.Summary()
		color := lipgloss.Color(series.Color)
		rows[idx] = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(12).Foreground(color).Bold(true).Render(series.Label),
			lipgloss.NewStyle().Width(sparkWidth+2).Foreground(color).Render(chart.Sparkline(series, sparkWidth)),
			styles.FilterLabel.Render(fmt.Sprintf("min %.2f  max %.2f  avg %.2f  total %.2f",
				summary.Min, summary.Max, summary.Mean, summary.Total)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *DetailModel) historyTable() string {
	if !m.loaded || len(m.history) == 0 {
		return ""
	}

	data := historyTableData{history: m.history}

	return NewUnstyledTable(data.Headers()...).
		Data(data).
		Width(max(0, m.viewState.Width-2)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.HeaderStyle
			case row%2 == 0:
				return styles.TableRow
			default:
				return styles.TableRowOdd
			}
		}).
		String()
}

func (m *DetailModel) View() string {
	if !m.selected {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View())

	return model.Container(styles.IconChart+" "+m.player.WebName, m.viewState.Width, m.viewState.Upper, content, true)
}

