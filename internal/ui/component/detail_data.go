package component

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
)

type historyColumn struct {
	label  string
	render func(entry fpl.GameweekEntry) string
}

func plain(metric func(fpl.GameweekEntry) fpl.Value) func(fpl.GameweekEntry) string {
	return func(entry fpl.GameweekEntry) string {
		return metric(entry).String()
	}
}

// counted formats large whole numbers with thousands separators.
func counted(metric func(fpl.GameweekEntry) fpl.Value) func(fpl.GameweekEntry) string {
	return func(entry fpl.GameweekEntry) string {
		value := metric(entry)
		if !value.Valid {
			return value.String()
		}

		return humanize.Comma(int64(value.Float))
	}
}

var historyColumns = []historyColumn{ //nolint:gochecknoglobals
	{label: "Fixture", render: func(entry fpl.GameweekEntry) string { return fmt.Sprintf("GW %d", entry.Round) }},
	{label: "Points", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.TotalPoints })},
	{label: "Minutes", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.Minutes })},
	{label: "Goals", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.GoalsScored })},
	{label: "Assists", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.Assists })},
	{label: "Clean Sheets", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.CleanSheets })},
	{label: "Goals Conceded", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.GoalsConceded })},
	{label: "Own Goals", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.OwnGoals })},
	{label: "Bonus", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.Bonus })},
	{label: "Creativity", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.Creativity })},
	{label: "Threat", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.Threat })},
	{label: "Starts", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.Starts })},
	{label: "xG", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.ExpectedGoals })},
	{label: "xA", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.ExpectedAssists })},
	{label: "xGI", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.ExpectedGoalInvolvements })},
	{label: "xGC", render: plain(func(e fpl.GameweekEntry) fpl.Value { return e.ExpectedGoalsConceded })},
	{label: "Value (£)", render: func(entry fpl.GameweekEntry) string { return entry.Value.Map(fpl.Tenths).Fixed(1) }},
	{label: "Transfers Balance", render: counted(func(e fpl.GameweekEntry) fpl.Value { return e.TransfersBalance })},
	{label: "Selected By", render: counted(func(e fpl.GameweekEntry) fpl.Value { return e.Selected })},
	{label: "Transfers In", render: counted(func(e fpl.GameweekEntry) fpl.Value { return e.TransfersIn })},
	{label: "Transfers Out", render: counted(func(e fpl.GameweekEntry) fpl.Value { return e.TransfersOut })},
}

// historyTableData adapts a player's history to table.Data.
type historyTableData struct {
	history []fpl.GameweekEntry
}

func (m historyTableData) Headers() []string {
	headers := make([]string, len(historyColumns))
	for idx, column := range historyColumns {
		headers[idx] = column.label
	}

	return headers
}

func (m historyTableData) At(row int, col int) string {
	if row < 0 || row > len(m.history)-1 || col < 0 || col > len(historyColumns)-1 {
		return ""
	}

	return historyColumns[col].render(m.history[row])
}

func (m historyTableData) Rows() int {
	return len(m.history)
}

func (m historyTableData) Columns() int {
	return len(historyColumns)
}
