package query

import (
	"cmp"

	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"golang.org/x/exp/slices"
)

// Direction is the sort order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}

	return "asc"
}

// Indicator is the glyph shown next to the active column header.
func (d Direction) Indicator() string {
	if d == Desc {
		return "▼"
	}

	return "▲"
}

// SortState is the active sort column. An empty Key leaves the order untouched.
type SortState struct {
	Key       string
	Direction Direction
}

// Toggle selects a sort column. Selecting the active column flips the direction, any other
// column starts ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == Asc {
		return SortState{Key: key, Direction: Desc}
	}

	return SortState{Key: key, Direction: Asc}
}

// Compare orders two values. Unknown values always sort after known values, independent
// of the direction.
func Compare(a fpl.Value, b fpl.Value, dir Direction) int { //nolint:varnamelen
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return 1
	case !b.Valid:
		return -1
	}

	if dir == Desc {
		return cmp.Compare(b.Float, a.Float)
	}

	return cmp.Compare(a.Float, b.Float)
}

// Sort returns a stably sorted copy of the players.
func Sort(players []fpl.Player, state SortState) []fpl.Player {
	sorted := slices.Clone(players)
	if state.Key == "" {
		return sorted
	}

	field, found := fpl.StatField(state.Key)
	if !found {
		field = fpl.FieldDescriptor{Key: state.Key}
	}

	slices.SortStableFunc(sorted, func(a, b fpl.Player) int { //nolint:varnamelen
		return Compare(field.Apply(a.Stat(field.Key)), field.Apply(b.Stat(field.Key)), state.Direction)
	})

	return sorted
}
