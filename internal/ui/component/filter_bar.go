package component

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-tui/internal/dashboard"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/query"
	"github.com/leighmacdonald/fpl-tui/internal/ui/command"
	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// FilterBarHeight is the number of lines rendered by FilterBarModel.
const FilterBarHeight = 3

type teamOption struct {
	id   string
	name string
}

func NewFilterBarModel() *FilterBarModel {
	return &FilterBarModel{
		id:       zone.NewPrefix(),
		search:   NewValidatingTextInputModel("Search", "", "player name", 24),
		boundMin: NewValidatingTextInputModel("Min", "", "any", 8, NumericValidator{}),
		boundMax: NewValidatingTextInputModel("Max", "", "any", 8, NumericValidator{}),
	}
}

// FilterBarModel edits the filter criteria. The team and position selectors cycle through
// their options, bounds are edited one stat field at a time.
type FilterBarModel struct {
	id        string
	search    *ValidatingTextInputModel
	boundMin  *ValidatingTextInputModel
	boundMax  *ValidatingTextInputModel
	statIdx   int
	teams     []teamOption
	criteria  query.Criteria
	viewState model.ViewState
}

func (m *FilterBarModel) Init() tea.Cmd {
	return nil
}

func (m *FilterBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		previous := m.viewState.KeyZone
		m.viewState = msg
		if previous != msg.KeyZone {
			return m, m.focus(msg.KeyZone)
		}
	case dashboard.State:
		m.setTeams(msg.Teams)
		m.setCriteria(msg.Criteria)
	case tea.MouseMsg:
		return m, m.onMouse(msg)
	case tea.KeyMsg:
		if m.viewState.Page != model.PageTable {
			break
		}

		return m, m.onKey(msg)
	}

	return m, nil
}

func (m *FilterBarModel) setTeams(teams fpl.Teams) {
	options := make([]teamOption, 0, len(teams))
	for teamID, name := range teams {
		options = append(options, teamOption{id: strconv.Itoa(teamID), name: name})
	}

	slices.SortFunc(options, func(a, b teamOption) int {
		return strings.Compare(a.name, b.name)
	})

	m.teams = options
}

// setCriteria syncs the inputs with criteria changed elsewhere, such as a reset. An input
// being edited is left alone so that keystrokes are never overwritten by older criteria.
func (m *FilterBarModel) setCriteria(criteria query.Criteria) {
	m.criteria = criteria

	switch m.viewState.KeyZone { //nolint:exhaustive
	case model.KZsearchInput:
	case model.KZboundMin, model.KZboundMax:
		if m.search.Value() != criteria.Search {
			m.search.SetValue(criteria.Search)
		}
	default:
		if m.search.Value() != criteria.Search {
			m.search.SetValue(criteria.Search)
		}

		m.loadBound()
	}
}

func (m *FilterBarModel) statKey() string {
	return fpl.StatFields[m.statIdx].Key
}

func (m *FilterBarModel) loadBound() {
	bound := m.criteria.Bound(m.statKey())
	if m.boundMin.Value() != bound.Min {
		m.boundMin.SetValue(bound.Min)
	}
	if m.boundMax.Value() != bound.Max {
		m.boundMax.SetValue(bound.Max)
	}
}

func (m *FilterBarModel) focus(zoneID model.KeyZone) tea.Cmd {
	m.search.Blur()
	m.boundMin.Blur()
	m.boundMax.Blur()

	switch zoneID { //nolint:exhaustive
	case model.KZsearchInput:
		return m.search.Focus()
	case model.KZboundMin:
		return m.boundMin.Focus()
	case model.KZboundMax:
		return m.boundMax.Focus()
	}

	return nil
}

func (m *FilterBarModel) onKey(msg tea.KeyMsg) tea.Cmd {
	switch m.viewState.KeyZone {
	case model.KZplayerTable:
		switch {
		case key.Matches(msg, input.Default.Search):
			return command.SetKeyZone(model.KZsearchInput)
		case key.Matches(msg, input.Default.Team):
			return m.cycleTeam()
		case key.Matches(msg, input.Default.Position):
			return m.cyclePosition()
		}
	case model.KZsearchInput:
		if key.Matches(msg, input.Default.Back, input.Default.Accept) {
			return command.SetKeyZone(model.KZplayerTable)
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() == m.criteria.Search {
			return cmd
		}

		search := m.search.Value()

		return tea.Batch(cmd, func() tea.Msg { return command.SearchMsg{Search: search} })
	case model.KZboundMin, model.KZboundMax:
		switch {
		case key.Matches(msg, input.Default.Back, input.Default.Accept):
			return command.SetKeyZone(model.KZplayerTable)
		case key.Matches(msg, input.Default.BoundPrevStat):
			m.statIdx = (m.statIdx - 1 + len(fpl.StatFields)) % len(fpl.StatFields)
			m.loadBound()

			return nil
		case key.Matches(msg, input.Default.BoundNextStat):
			m.statIdx = (m.statIdx + 1) % len(fpl.StatFields)
			m.loadBound()

			return nil
		}

		var cmd tea.Cmd
		if m.viewState.KeyZone == model.KZboundMin {
			m.boundMin, cmd = m.boundMin.Update(msg)
		} else {
			m.boundMax, cmd = m.boundMax.Update(msg)
		}

		bound := query.Bound{Min: m.boundMin.Value(), Max: m.boundMax.Value()}
		if bound == m.criteria.Bound(m.statKey()) {
			return cmd
		}

		statKey := m.statKey()

		return tea.Batch(cmd, func() tea.Msg { return command.BoundMsg{Key: statKey, Bound: bound} })
	}

	return nil
}

func (m *FilterBarModel) onMouse(msg tea.MouseMsg) tea.Cmd {
	if m.viewState.Page != model.PageTable || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch {
	case zone.Get(m.id + "team").InBounds(msg):
		return m.cycleTeam()
	case zone.Get(m.id + "position").InBounds(msg):
		return m.cyclePosition()
	case zone.Get(m.id + "search").InBounds(msg):
		return command.SetKeyZone(model.KZsearchInput)
	case zone.Get(m.id + "min").InBounds(msg):
		return command.SetKeyZone(model.KZboundMin)
	case zone.Get(m.id + "max").InBounds(msg):
		return command.SetKeyZone(model.KZboundMax)
	}

	return nil
}

// cycleTeam moves to the next team, wrapping back to all teams after the last one.
func (m *FilterBarModel) cycleTeam() tea.Cmd {
	current := slices.IndexFunc(m.teams, func(option teamOption) bool {
		return option.id == m.criteria.Team
	})

	next := ""
	if current+1 < len(m.teams) {
		next = m.teams[current+1].id
	}

	return func() tea.Msg { return command.TeamMsg{Team: next} }
}

func (m *FilterBarModel) cyclePosition() tea.Cmd {
	current := slices.IndexFunc(fpl.Positions, func(position fpl.Position) bool {
		return strconv.Itoa(int(position)) == m.criteria.Position
	})

	next := ""
	if current+1 < len(fpl.Positions) {
		next = strconv.Itoa(int(fpl.Positions[current+1]))
	}

	return func() tea.Msg { return command.PositionMsg{Position: next} }
}

func (m *FilterBarModel) teamLabel() string {
	if m.criteria.Team == "" {
		return "All Teams"
	}

	for _, option := range m.teams {
		if option.id == m.criteria.Team {
			return option.name
		}
	}

	return m.criteria.Team
}

func (m *FilterBarModel) positionLabel() string {
	position, found := fpl.ParsePosition(m.criteria.Position)
	if !found {
		return "All Positions"
	}

	return position.String()
}

// activeBounds summarises every bound in stat field order.
func (m *FilterBarModel) activeBounds() string {
	var parts []string
	for _, field := range fpl.StatFields {
		bound := m.criteria.Bound(field.Key)
		switch {
		case bound.Min != "" && bound.Max != "":
			parts = append(parts, fmt.Sprintf("%s %s..%s", field.Label, bound.Min, bound.Max))
		case bound.Min != "":
			parts = append(parts, fmt.Sprintf("%s ≥ %s", field.Label, bound.Min))
		case bound.Max != "":
			parts = append(parts, fmt.Sprintf("%s ≤ %s", field.Label, bound.Max))
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return styles.FilterActive.Render(clip(strings.Join(parts, " · "), max(10, m.viewState.Width-60)))
}

func (m *FilterBarModel) View() string {
	selectors := lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(m.id+"search", m.search.View()),
		"  ",
		styles.FilterLabel.Render("Team:"),
		zone.Mark(m.id+"team", styles.FilterValue.Render(m.teamLabel())),
		styles.FilterLabel.Render("Position:"),
		zone.Mark(m.id+"position", styles.FilterValue.Render(m.positionLabel())))

	bounds := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.FilterLabel.Render("Bound"),
		styles.FilterValue.Render("‹"+fpl.StatFields[m.statIdx].Label+"›"),
		zone.Mark(m.id+"min", m.boundMin.View()),
		"  ",
		zone.Mark(m.id+"max", m.boundMax.View()),
		"  ",
		m.activeBounds())

	return lipgloss.NewStyle().Width(m.viewState.Width).Height(FilterBarHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, selectors, bounds))
}
