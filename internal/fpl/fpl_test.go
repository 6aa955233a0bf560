package fpl_test

import (
	"encoding/json"
	"testing"

	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/stretchr/testify/require"
)

func TestValueUnmarshal(t *testing.T) {
	t.Parallel()

	type tc struct {
		input string
		want  fpl.Value
		err   bool
	}

	cases := []tc{
		{input: `12`, want: fpl.Some(12)},
		{input: `"5.2"`, want: fpl.Some(5.2)},
		{input: `null`, want: fpl.Null},
		{input: `""`, want: fpl.Null},
		{input: `"abc"`, err: true},
		{input: `true`, err: true},
	}

	for _, testCase := range cases {
		var value fpl.Value
		err := json.Unmarshal([]byte(testCase.input), &value)
		if testCase.err {
			require.ErrorIs(t, err, fpl.ErrValue, testCase.input)

			continue
		}
		require.NoError(t, err, testCase.input)
		require.Equal(t, testCase.want, value, testCase.input)
	}
}

func TestValueMissingFieldIsNull(t *testing.T) {
	t.Parallel()

	var player fpl.Player
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"total_points":10}`), &player))
	require.True(t, player.TotalPoints.Valid)
	require.False(t, player.NowCost.Valid)
	require.Equal(t, "?", player.NowCost.String())
}

func TestValueMarshal(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(struct {
		A fpl.Value `json:"a"`
		B fpl.Value `json:"b"`
	}{A: fpl.Some(4.5), B: fpl.Null})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":4.5,"b":null}`, string(body))
}

func TestTransform(t *testing.T) {
	t.Parallel()

	field, found := fpl.StatField("now_cost")
	require.True(t, found)
	require.Equal(t, fpl.Some(5.5), field.Apply(fpl.Some(55)))
	require.Equal(t, fpl.Null, field.Apply(fpl.Null))

	points, found := fpl.StatField("total_points")
	require.True(t, found)
	require.Equal(t, fpl.Some(55), points.Apply(fpl.Some(55)))

	_, found = fpl.StatField("bonus")
	require.False(t, found)

	value, found := fpl.ChartMetric("value")
	require.True(t, found)
	require.Equal(t, "Value (£)", value.Label)
}

func TestBootstrapDecode(t *testing.T) {
	t.Parallel()

	const payload = `{
		"events": [],
		"teams": [{"id": 1, "name": "Arsenal", "short_name": "ARS"}, {"id": 14, "name": "Man Utd", "short_name": "MUN"}],
		"elements": [{
			"id": 7, "first_name": "Bukayo", "second_name": "Saka", "web_name": "Saka", "team": 1, "element_type": 3,
			"total_points": 180, "now_cost": 100, "form": "6.5", "points_per_game": "5.8",
			"expected_goals_per_90": 0.41, "chance_of_playing_next_round": null
		}]
	}`

	var bootstrap fpl.Bootstrap
	require.NoError(t, json.Unmarshal([]byte(payload), &bootstrap))
	require.Len(t, bootstrap.Elements, 1)

	player := bootstrap.Elements[0]
	require.Equal(t, "Bukayo Saka", player.Name())
	require.Equal(t, fpl.Midfielder, player.ElementType)
	require.Equal(t, "Midfielder", player.ElementType.String())
	require.Equal(t, fpl.Some(6.5), player.Stat("form"))
	require.Equal(t, fpl.Some(0.41), player.Stat("expected_goals_per_90"))
	require.False(t, player.Stat("chance_of_playing_next_round").Valid)
	require.False(t, player.Stat("does_not_exist").Valid)

	teams := bootstrap.TeamNames()
	require.Equal(t, "Arsenal", teams.Name(player.Team))
	require.Empty(t, teams.Name(99))
}

func TestElementSummaryDecode(t *testing.T) {
	t.Parallel()

	const payload = `{"fixtures": [], "history": [
		{"element": 7, "round": 1, "total_points": 9, "value": 100, "creativity": "34.2", "expected_goals": "0.55"},
		{"element": 7, "round": 2, "total_points": 2, "value": 101, "creativity": "3.0", "expected_goals": "0.00"}
	]}`

	var summary fpl.ElementSummary
	require.NoError(t, json.Unmarshal([]byte(payload), &summary))
	require.Len(t, summary.History, 2)
	require.Equal(t, 2, summary.History[1].Round)
	require.Equal(t, fpl.Some(34.2), summary.History[0].Metric("creativity"))
	require.Equal(t, fpl.Some(101), summary.History[1].Metric("value"))
	require.False(t, summary.History[0].Metric("nope").Valid)
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	pos, ok := fpl.ParsePosition("4")
	require.True(t, ok)
	require.Equal(t, fpl.Forward, pos)

	for _, key := range []string{"", "0", "5", "x"} {
		_, ok = fpl.ParsePosition(key)
		require.False(t, ok, key)
	}

	require.Equal(t, "Unknown", fpl.Position(9).String())
}
