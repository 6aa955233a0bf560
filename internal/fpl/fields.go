package fpl

// FieldDescriptor declares a named numeric attribute and how it is displayed.
type FieldDescriptor struct {
	Key       string
	Label     string
	Transform Transform
}

// Apply maps a raw value onto its display value.
func (d FieldDescriptor) Apply(value Value) Value {
	return value.Map(d.Transform)
}

// StatFields are the filterable and sortable player table columns, in display order.
var StatFields = []FieldDescriptor{ //nolint:gochecknoglobals
	{Key: "total_points", Label: "Points"},
	{Key: "now_cost", Label: "Cost (£)", Transform: Tenths},
	{Key: "minutes", Label: "Minutes"},
	{Key: "form", Label: "Form"},
	{Key: "points_per_game", Label: "Points/Game"},
	{Key: "goals_scored", Label: "Goals"},
	{Key: "assists", Label: "Assists"},
	{Key: "clean_sheets", Label: "Clean Sheets"},
	{Key: "starts_per_90", Label: "Starts/90"},
	{Key: "clean_sheets_per_90", Label: "CS/90"},
	{Key: "expected_goals_per_90", Label: "xG/90"},
	{Key: "expected_assists_per_90", Label: "xA/90"},
	{Key: "expected_goal_involvements_per_90", Label: "xGI/90"},
	{Key: "expected_goals_conceded_per_90", Label: "xGC/90"},
	{Key: "chance_of_playing_this_round", Label: "Playing This"},
	{Key: "chance_of_playing_next_round", Label: "Playing Next"},
}

// ChartMetrics are the gameweek history attributes that can be charted.
var ChartMetrics = []FieldDescriptor{ //nolint:gochecknoglobals
	{Key: "total_points", Label: "Points"},
	{Key: "goals_scored", Label: "Goals"},
	{Key: "assists", Label: "Assists"},
	{Key: "bonus", Label: "Bonus"},
	{Key: "creativity", Label: "Creativity"},
	{Key: "threat", Label: "Threat"},
	{Key: "expected_goals", Label: "xG"},
	{Key: "expected_assists", Label: "xA"},
	{Key: "expected_goal_involvements", Label: "xGI"},
	{Key: "expected_goals_conceded", Label: "xGC"},
	{Key: "value", Label: "Value (£)", Transform: Tenths},
}

// DefaultMetric is the chart metric selected when nothing else is configured.
const DefaultMetric = "total_points"

func lookup(fields []FieldDescriptor, key string) (FieldDescriptor, bool) {
	for _, field := range fields {
		if field.Key == key {
			return field, true
		}
	}

	return FieldDescriptor{}, false
}

// StatField finds a stat field descriptor by key.
func StatField(key string) (FieldDescriptor, bool) {
	return lookup(StatFields, key)
}

// ChartMetric finds a chart metric descriptor by key.
func ChartMetric(key string) (FieldDescriptor, bool) {
	return lookup(ChartMetrics, key)
}
