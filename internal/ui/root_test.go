package ui

import (
	"context"
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/query"
	"github.com/leighmacdonald/fpl-tui/internal/ui/command"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type fakeSource struct {
	bootstrap fpl.Bootstrap
}

func (f fakeSource) Bootstrap(_ context.Context) (fpl.Bootstrap, error) {
	return f.bootstrap, nil
}

func (f fakeSource) ElementSummary(_ context.Context, _ int) (fpl.ElementSummary, error) {
	return fpl.ElementSummary{}, errUpstream
}

func testBootstrap() fpl.Bootstrap {
	return fpl.Bootstrap{
		Elements: []fpl.Player{
			{ID: 1, FirstName: "Mohamed", SecondName: "Salah", Team: 1, ElementType: fpl.Midfielder, TotalPoints: fpl.Some(211)},
			{ID: 2, FirstName: "Erling", SecondName: "Haaland", Team: 2, ElementType: fpl.Forward, TotalPoints: fpl.Some(181)},
			{ID: 3, FirstName: "Bukayo", SecondName: "Saka", Team: 3, ElementType: fpl.Midfielder},
		},
		Teams: []fpl.Team{{ID: 1, Name: "Liverpool"}, {ID: 2, Name: "Man City"}, {ID: 3, Name: "Arsenal"}},
	}
}

func newTestRoot(t *testing.T) rootModel {
	t.Helper()

	root := newRootModel(t.Context(), fakeSource{bootstrap: testBootstrap()}, nil,
		BuildInfo{Version: "test"}, "config.yaml", t.TempDir())

	return update(t, *root, tea.WindowSizeMsg{Width: 180, Height: 40})
}

func update(t *testing.T, root rootModel, msg tea.Msg) rootModel {
	t.Helper()

	updated, _ := root.Update(msg)
	next, ok := updated.(rootModel)
	require.True(t, ok)

	return next
}

func TestRootWindowSize(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t)
	require.Equal(t, 180, root.viewState.Width)
	require.Equal(t, 39, root.viewState.Upper)
	require.NotEmpty(t, root.View())
}

func TestRootFilterFlow(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t)
	root = update(t, root, command.BootstrapMsg{Bootstrap: testBootstrap()})
	require.True(t, root.state.Loaded)
	require.Len(t, root.state.Visible(), 3)

	root = update(t, root, command.SearchMsg{Search: "sa"})
	require.Len(t, root.state.Visible(), 2)

	root = update(t, root, command.SearchMsg{Search: ""})
	root = update(t, root, command.PositionMsg{Position: "4"})
	require.Len(t, root.state.Visible(), 1)

	root = update(t, root, command.PositionMsg{Position: ""})
	root = update(t, root, command.BoundMsg{Key: "total_points", Bound: query.Bound{Min: "200"}})
	// Saka has no known total so the bound keeps him.
	require.Len(t, root.state.Visible(), 2)

	root = update(t, root, command.TeamMsg{Team: "1"})
	require.Len(t, root.state.Visible(), 1)

	root = update(t, root, command.SortMsg{Key: "total_points"})
	require.Equal(t, query.SortState{Key: "total_points", Direction: query.Asc}, root.state.Sort)

	root = update(t, root, command.ResetFiltersMsg{})
	require.Len(t, root.state.Visible(), 3)
	require.Equal(t, "total_points", root.state.Sort.Key)
	require.NotEmpty(t, root.View())
}

func TestRootBootstrapFailure(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t)
	updated, cmd := root.Update(command.BootstrapMsg{Err: errUpstream})
	require.False(t, updated.(rootModel).state.Loaded) //nolint:forcetypeassert
	require.NotNil(t, cmd)

	status, ok := cmd().(command.StatusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
}

func TestRootDetailFlow(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t)
	root = update(t, root, command.BootstrapMsg{Bootstrap: testBootstrap()})

	root = update(t, root, command.SelectPlayerMsg{PlayerID: 2})
	require.Equal(t, model.PageDetail, root.viewState.Page)
	require.Equal(t, 2, root.state.Selected)
	require.True(t, root.state.IsPending(2))
	require.NotEmpty(t, root.View())

	// A failure clears the pending marker so the player can be retried.
	root = update(t, root, command.DetailMsg{PlayerID: 2, Err: errUpstream})
	require.False(t, root.state.IsPending(2))
	require.False(t, root.state.HasDetail(2))

	root = update(t, root, command.BackMsg{})
	require.Equal(t, model.PageTable, root.viewState.Page)

	root = update(t, root, command.SelectPlayerMsg{PlayerID: 2})
	require.True(t, root.state.IsPending(2))

	history := []fpl.GameweekEntry{{Round: 1, TotalPoints: fpl.Some(2)}, {Round: 2, TotalPoints: fpl.Some(13)}}
	root = update(t, root, command.DetailMsg{PlayerID: 2, History: history})
	require.True(t, root.state.HasDetail(2))
	require.NotEmpty(t, root.View())

	// A duplicate response never replaces the stored history.
	root = update(t, root, command.DetailMsg{PlayerID: 2, History: history[:1]})
	stored, ok := root.state.Detail(2)
	require.True(t, ok)
	require.Len(t, stored, 2)
}

func TestRootQuit(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t)
	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootHelpToggle(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t)
	root = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.Equal(t, model.PageHelp, root.viewState.Page)
	require.NotEmpty(t, root.View())
}
