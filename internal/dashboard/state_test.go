package dashboard_test

import (
	"testing"

	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/dashboard"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/query"
	"github.com/stretchr/testify/require"
)

func loaded() dashboard.State {
	return dashboard.New(nil).BootstrapLoaded(fpl.Bootstrap{
		Elements: []fpl.Player{
			{ID: 7, FirstName: "Bukayo", SecondName: "Saka", Team: 1, ElementType: fpl.Midfielder, TotalPoints: fpl.Some(150)},
			{ID: 9, FirstName: "Erling", SecondName: "Haaland", Team: 13, ElementType: fpl.Forward, TotalPoints: fpl.Some(200)},
			{ID: 3, FirstName: "David", SecondName: "Raya", Team: 1, ElementType: fpl.Goalkeeper, TotalPoints: fpl.Null},
		},
		Teams: []fpl.Team{{ID: 1, Name: "Arsenal"}, {ID: 13, Name: "Man City"}},
	})
}

func visibleIDs(state dashboard.State) []int {
	var out []int
	for _, player := range state.Visible() {
		out = append(out, player.ID)
	}

	return out
}

func TestBootstrapLoaded(t *testing.T) {
	t.Parallel()

	state := dashboard.New(nil)
	require.False(t, state.Loaded)
	require.Equal(t, chart.DefaultSelection(), state.Metrics)

	state = loaded()
	require.True(t, state.Loaded)
	require.Equal(t, "Man City", state.Teams.Name(13))
	require.Equal(t, []int{7, 9, 3}, visibleIDs(state))
}

func TestCriteriaTransitions(t *testing.T) {
	t.Parallel()

	state := loaded()
	require.Equal(t, []int{7, 3}, visibleIDs(state.WithTeam("1")))
	require.Equal(t, []int{9}, visibleIDs(state.WithPosition("4")))
	require.Equal(t, []int{9}, visibleIDs(state.WithSearch("haa")))
	require.Equal(t, []int{9, 3}, visibleIDs(state.WithBound("total_points", query.Bound{Min: "160"})))

	sorted := state.ToggleSort("total_points")
	require.Equal(t, []int{7, 9, 3}, visibleIDs(sorted))
	require.Equal(t, []int{9, 7, 3}, visibleIDs(sorted.ToggleSort("total_points")))

	require.Equal(t, []int{7, 9, 3}, visibleIDs(state))

	reset := sorted.WithTeam("13").WithSearch("zz").ResetCriteria()
	require.Equal(t, query.Criteria{}, reset.Criteria)
	require.Equal(t, "total_points", reset.Sort.Key)
}

func TestSelectFetchesOnce(t *testing.T) {
	t.Parallel()

	state, fetch := loaded().Select(7)
	require.True(t, fetch)
	require.True(t, state.IsPending(7))
	require.Equal(t, 7, state.Selected)

	state, fetch = state.Back().Select(7)
	require.False(t, fetch, "in flight request must not be repeated")

	history := []fpl.GameweekEntry{{Round: 1, TotalPoints: fpl.Some(8)}}
	state = state.DetailLoaded(7, history)
	require.False(t, state.IsPending(7))

	state, fetch = state.Back().Select(7)
	require.False(t, fetch, "loaded history must not be fetched again")

	got, found := state.Detail(7)
	require.True(t, found)
	require.Equal(t, history, got)
}

func TestDetailWriteOnce(t *testing.T) {
	t.Parallel()

	first := []fpl.GameweekEntry{{Round: 1, TotalPoints: fpl.Some(8)}}
	second := []fpl.GameweekEntry{{Round: 1, TotalPoints: fpl.Some(1)}}

	state, _ := loaded().Select(7)
	state = state.DetailLoaded(7, first).DetailLoaded(7, second)

	got, _ := state.Detail(7)
	require.Equal(t, first, got)
}

func TestStaleResponseKeyedByID(t *testing.T) {
	t.Parallel()

	state, _ := loaded().Select(7)
	state = state.Back()
	state, _ = state.Select(9)

	// The response for 7 arrives after the user moved on to 9.
	state = state.DetailLoaded(7, []fpl.GameweekEntry{{Round: 1, TotalPoints: fpl.Some(8)}})
	require.Equal(t, 9, state.Selected)
	require.True(t, state.HasDetail(7))
	require.False(t, state.HasDetail(9))
	require.True(t, state.IsPending(9))
	require.Empty(t, state.Series())

	player, found := state.SelectedPlayer()
	require.True(t, found)
	require.Equal(t, "Haaland", player.SecondName)
}

func TestDetailFailedAllowsRetry(t *testing.T) {
	t.Parallel()

	state, _ := loaded().Select(7)
	state = state.DetailFailed(7)
	require.False(t, state.IsPending(7))
	require.False(t, state.HasDetail(7))

	_, fetch := state.Back().Select(7)
	require.True(t, fetch)
}

func TestTransitionsDoNotShareMaps(t *testing.T) {
	t.Parallel()

	base, _ := loaded().Select(7)
	loadedState := base.DetailLoaded(7, []fpl.GameweekEntry{{Round: 1}})

	require.False(t, base.HasDetail(7))
	require.True(t, base.IsPending(7))
	require.True(t, loadedState.HasDetail(7))
}

func TestSeries(t *testing.T) {
	t.Parallel()

	state, _ := loaded().Select(7)
	state = state.DetailLoaded(7, []fpl.GameweekEntry{
		{Round: 1, TotalPoints: fpl.Some(8), Value: fpl.Some(90)},
		{Round: 2, TotalPoints: fpl.Some(2), Value: fpl.Some(91)},
	})

	series := state.Series()
	require.Len(t, series, 1)
	require.Equal(t, "total_points", series[0].Key)

	series = state.ToggleMetric("value").Series()
	require.Len(t, series, 2)
	require.InDelta(t, 9.1, series[1].Points[1].Value.Float, 0.0001)

	require.Empty(t, state.Back().Series())
	_, found := state.Back().SelectedPlayer()
	require.False(t, found)
}
