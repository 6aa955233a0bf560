package component

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/fpl-tui/internal/dashboard"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/query"
	"github.com/leighmacdonald/fpl-tui/internal/ui/command"
	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// tableChrome is the number of lines used by the header row, its border and the container.
const tableChrome = 4

func NewPlayerTableModel() *PlayerTableModel {
	return &PlayerTableModel{
		id:    zone.NewPrefix(),
		table: NewUnstyledTable(),
		teams: fpl.Teams{},
	}
}

// PlayerTableModel renders the filtered and sorted players. It never modifies the player
// list itself, sorting and selection are requested from the root model through commands.
type PlayerTableModel struct {
	id          string
	table       *table.Table
	players     []fpl.Player
	teams       fpl.Teams
	sort        query.SortState
	loaded      bool
	selectedRow int
	selectedCol int
	offset      int
	viewState   model.ViewState
}

func (m *PlayerTableModel) Init() tea.Cmd {
	return nil
}

func (m *PlayerTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.table.Width(msg.Width - 2)
		m.clamp()

		return m, nil
	case dashboard.State:
		m.players = msg.Visible()
		m.teams = msg.Teams
		m.sort = msg.Sort
		m.loaded = msg.Loaded
		m.clamp()

		return m, nil
	case tea.MouseMsg:
		return m, m.onMouse(msg)
	case tea.KeyMsg:
		if !m.isActiveZone() {
			break
		}

		return m, m.onKey(msg)
	}

	return m, nil
}

func (m *PlayerTableModel) isActiveZone() bool {
	return m.viewState.Page == model.PageTable && m.viewState.KeyZone == model.KZplayerTable
}

func (m *PlayerTableModel) onKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, input.Default.Up):
		m.moveSelection(-1)
	case key.Matches(msg, input.Default.Down):
		m.moveSelection(1)
	case key.Matches(msg, input.Default.PageUp):
		m.moveSelection(-m.pageSize())
	case key.Matches(msg, input.Default.PageDown):
		m.moveSelection(m.pageSize())
	case key.Matches(msg, input.Default.Left):
		m.selectedCol = (m.selectedCol - 1 + len(fpl.StatFields)) % len(fpl.StatFields)
	case key.Matches(msg, input.Default.Right):
		m.selectedCol = (m.selectedCol + 1) % len(fpl.StatFields)
	case key.Matches(msg, input.Default.Sort):
		return command.Sort(fpl.StatFields[m.selectedCol].Key)
	case key.Matches(msg, input.Default.Accept):
		if player, ok := m.currentPlayer(); ok {
			return command.SelectPlayer(player.ID)
		}
	}

	return nil
}

func (m *PlayerTableModel) onMouse(msg tea.MouseMsg) tea.Cmd {
	if m.viewState.Page != model.PageTable {
		return nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		m.moveSelection(-1)

		return nil
	case tea.MouseButtonWheelDown:
		m.moveSelection(1)

		return nil
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	for colIdx, field := range fpl.StatFields {
		if zone.Get(m.id + field.Key).InBounds(msg) {
			m.selectedCol = colIdx

			return command.Sort(field.Key)
		}
	}

	for rowIdx, player := range m.window() {
		if zone.Get(m.id + "row" + strconv.Itoa(player.ID)).InBounds(msg) {
			m.selectedRow = m.offset + rowIdx

			return command.SelectPlayer(player.ID)
		}
	}

	return nil
}

func (m *PlayerTableModel) pageSize() int {
	return max(1, m.viewState.Upper-tableChrome)
}

func (m *PlayerTableModel) moveSelection(delta int) {
	m.selectedRow += delta
	m.clamp()
}

// clamp keeps the selected row inside the player list and scrolls the window so that it
// stays visible.
func (m *PlayerTableModel) clamp() {
	m.selectedRow = max(0, min(m.selectedRow, len(m.players)-1))

	size := m.pageSize()
	if m.selectedRow < m.offset {
		m.offset = m.selectedRow
	}
	if m.selectedRow >= m.offset+size {
		m.offset = m.selectedRow - size + 1
	}
	m.offset = max(0, min(m.offset, len(m.players)-size))
}

func (m *PlayerTableModel) window() []fpl.Player {
	if len(m.players) == 0 {
		return nil
	}

	end := min(len(m.players), m.offset+m.pageSize())

	return m.players[m.offset:end]
}

func (m *PlayerTableModel) currentPlayer() (fpl.Player, bool) {
	if m.selectedRow < 0 || m.selectedRow > len(m.players)-1 {
		return fpl.Player{}, false
	}

	return m.players[m.selectedRow], true
}

func (m *PlayerTableModel) View() string {
	title := styles.IconPlayers + " Players " + strconv.Itoa(len(m.players))
	if !m.loaded {
		return model.Container(title, m.viewState.Width, m.viewState.Upper,
			styles.InfoMessage.Render(styles.IconLoading+" Loading players..."), m.isActiveZone())
	}

	if len(m.players) == 0 {
		return model.Container(title, m.viewState.Width, m.viewState.Upper,
			styles.InfoMessage.Render("No players match the current filters"), m.isActiveZone())
	}

	data := newPlayerTableData(m.id, m.window(), m.teams, m.sort)
	selectedRow := m.selectedRow - m.offset
	selectedCol := colStats + m.selectedCol
	sortCol := -1
	for idx, field := range fpl.StatFields {
		if field.Key == m.sort.Key {
			sortCol = colStats + idx
		}
	}

	content := m.table.
		Data(data).
		Headers(data.Headers()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow && col == sortCol:
				return styles.HeaderStyleSorted
			case row == table.HeaderRow && col == selectedCol:
				return styles.HeaderStyleSelected
			case row == table.HeaderRow:
				return styles.HeaderStyle
			case row == selectedRow:
				return styles.SelectedCellStyle
			case data.At(row, col) == "?":
				return styles.TableRowUnknown
			case row%2 == 0:
				return styles.TableRow
			default:
				return styles.TableRowOdd
			}
		}).
		String()

	return model.Container(title, m.viewState.Width, m.viewState.Upper, content, m.isActiveZone())
}
