// Package dashboard holds the application state and the transitions that modify it. Every
// transition returns a new State and leaves the receiver untouched.
package dashboard

import (
	"maps"

	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/query"
)

type State struct {
	Players  []fpl.Player
	Teams    fpl.Teams
	Loaded   bool
	Criteria query.Criteria
	Sort     query.SortState
	Metrics  chart.Selection
	// Selected is the player id being inspected, 0 when the table is shown.
	Selected int

	details map[int][]fpl.GameweekEntry
	pending map[int]struct{}
}

func New(metrics chart.Selection) State {
	if len(metrics) == 0 {
		metrics = chart.DefaultSelection()
	}

	return State{
		Teams:   fpl.Teams{},
		Metrics: metrics,
		details: map[int][]fpl.GameweekEntry{},
		pending: map[int]struct{}{},
	}
}

// BootstrapLoaded installs the player and team lists.
func (s State) BootstrapLoaded(bootstrap fpl.Bootstrap) State {
	s.Players = bootstrap.Elements
	s.Teams = bootstrap.TeamNames()
	s.Loaded = true

	return s
}

func (s State) WithSearch(search string) State {
	s.Criteria.Search = search

	return s
}

func (s State) WithTeam(team string) State {
	s.Criteria.Team = team

	return s
}

func (s State) WithPosition(position string) State {
	s.Criteria.Position = position

	return s
}

func (s State) WithBound(key string, bound query.Bound) State {
	s.Criteria = s.Criteria.WithBound(key, bound)

	return s
}

// ResetCriteria clears the search, selectors and every bound. The sort is kept.
func (s State) ResetCriteria() State {
	s.Criteria = query.Criteria{}

	return s
}

func (s State) ToggleSort(key string) State {
	s.Sort = s.Sort.Toggle(key)

	return s
}

func (s State) ToggleMetric(key string) State {
	s.Metrics = s.Metrics.Toggle(key)

	return s
}

// Select opens the detail view for a player. The returned bool reports whether the
// player's history must be fetched, which is only the case when it is neither loaded
// nor already in flight.
func (s State) Select(playerID int) (State, bool) {
	s.Selected = playerID
	if s.HasDetail(playerID) || s.IsPending(playerID) {
		return s, false
	}

	s.pending = maps.Clone(s.pending)
	if s.pending == nil {
		s.pending = map[int]struct{}{}
	}
	s.pending[playerID] = struct{}{}

	return s, true
}

// Back returns to the player table.
func (s State) Back() State {
	s.Selected = 0

	return s
}

// DetailLoaded records a fetched history. Entries are write-once, a late duplicate
// response for an id that is already present is discarded. The response is keyed by
// its own id so it never affects the currently selected player.
func (s State) DetailLoaded(playerID int, history []fpl.GameweekEntry) State {
	s = s.clearPending(playerID)
	if s.HasDetail(playerID) {
		return s
	}

	s.details = maps.Clone(s.details)
	if s.details == nil {
		s.details = map[int][]fpl.GameweekEntry{}
	}
	s.details[playerID] = history

	return s
}

// DetailFailed clears the in-flight marker so that selecting the player again retries.
func (s State) DetailFailed(playerID int) State {
	return s.clearPending(playerID)
}

func (s State) clearPending(playerID int) State {
	if !s.IsPending(playerID) {
		return s
	}

	s.pending = maps.Clone(s.pending)
	delete(s.pending, playerID)

	return s
}

func (s State) HasDetail(playerID int) bool {
	_, found := s.details[playerID]

	return found
}

func (s State) IsPending(playerID int) bool {
	_, found := s.pending[playerID]

	return found
}

func (s State) Detail(playerID int) ([]fpl.GameweekEntry, bool) {
	history, found := s.details[playerID]

	return history, found
}

// Visible is the filtered and sorted player list.
func (s State) Visible() []fpl.Player {
	return query.Apply(s.Players, s.Criteria, s.Sort)
}

func (s State) Player(playerID int) (fpl.Player, bool) {
	for _, player := range s.Players {
		if player.ID == playerID {
			return player, true
		}
	}

	return fpl.Player{}, false
}

// SelectedPlayer returns the player shown in the detail view.
func (s State) SelectedPlayer() (fpl.Player, bool) {
	if s.Selected == 0 {
		return fpl.Player{}, false
	}

	return s.Player(s.Selected)
}

// Series binds the selected player's history to the selected metrics. It is empty until
// the history has been loaded.
func (s State) Series() []chart.Series {
	history, found := s.Detail(s.Selected)
	if s.Selected == 0 || !found {
		return nil
	}

	return chart.Bind(history, s.Metrics)
}
