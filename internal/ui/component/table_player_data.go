package component

import (
	"strconv"

	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/query"
	zone "github.com/lrstanley/bubblezone"
)

const (
	colName = iota
	colTeam
	colPosition
	// colStats is the first stat column, the rest follow fpl.StatFields order.
	colStats
)

const nameWidth = 24

// playerTableData adapts a window of the visible players to table.Data.
type playerTableData struct {
	zoneID  string
	players []fpl.Player
	teams   fpl.Teams
	sort    query.SortState
}

func newPlayerTableData(zoneID string, players []fpl.Player, teams fpl.Teams, sort query.SortState) *playerTableData {
	return &playerTableData{zoneID: zoneID, players: players, teams: teams, sort: sort}
}

// headerLabel appends the sort indicator when the column is the active sort key.
func headerLabel(field fpl.FieldDescriptor, sort query.SortState) string {
	if sort.Key != field.Key {
		return field.Label
	}

	return field.Label + " " + sort.Direction.Indicator()
}

func (m *playerTableData) Headers() []string {
	headers := []string{"Name", "Team", "Position"}
	for _, field := range fpl.StatFields {
		headers = append(headers, zone.Mark(m.zoneID+field.Key, headerLabel(field, m.sort)))
	}

	return headers
}

func (m *playerTableData) At(row int, col int) string {
	if row < 0 || row > len(m.players)-1 || col < 0 || col > m.Columns()-1 {
		return ""
	}

	player := m.players[row]
	switch col {
	case colName:
		return zone.Mark(m.zoneID+"row"+strconv.Itoa(player.ID), clip(player.Name(), nameWidth))
	case colTeam:
		return m.teams.Name(player.Team)
	case colPosition:
		return player.ElementType.String()
	default:
		field := fpl.StatFields[col-colStats]

		return field.Apply(player.Stat(field.Key)).String()
	}
}

func (m *playerTableData) Rows() int {
	return len(m.players)
}

func (m *playerTableData) Columns() int {
	return colStats + len(fpl.StatFields)
}
