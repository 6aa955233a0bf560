// Package query derives the ordered, display ready player rows from the full player set
// and the user's current filter and sort criteria.
package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/leighmacdonald/fpl-tui/internal/fpl"
)

// Bound holds the raw min and max inputs for a single stat field. They are kept as the
// user typed them and only parsed when filtering.
type Bound struct {
	Min string
	Max string
}

// IsZero reports whether neither side of the bound is set.
func (b Bound) IsZero() bool {
	return b.Min == "" && b.Max == ""
}

// Criteria is the complete set of active filters.
type Criteria struct {
	Search   string
	Team     string
	Position string
	Bounds   map[string]Bound
}

// WithBound returns a copy of the criteria with the bound for key replaced.
func (c Criteria) WithBound(key string, bound Bound) Criteria {
	bounds := make(map[string]Bound, len(c.Bounds)+1)
	for k, v := range c.Bounds {
		bounds[k] = v
	}

	if bound.IsZero() {
		delete(bounds, key)
	} else {
		bounds[key] = bound
	}

	c.Bounds = bounds

	return c
}

// Bound returns the bound for key, the zero Bound when unset.
func (c Criteria) Bound(key string) Bound {
	return c.Bounds[key]
}

// parseBound mirrors a lenient float parse, any non numeric input yields NaN which
// never satisfies a comparison.
func parseBound(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}

	return value
}

// ValidBound reports whether a bound input is empty or parses as a number.
func ValidBound(raw string) bool {
	return raw == "" || !math.IsNaN(parseBound(raw))
}

// Matches reports whether a single player satisfies every criterion.
func (c Criteria) Matches(player fpl.Player) bool {
	if !strings.Contains(strings.ToLower(player.Name()), strings.ToLower(c.Search)) {
		return false
	}

	if c.Team != "" && player.TeamKey() != c.Team {
		return false
	}

	if c.Position != "" && player.PositionKey() != c.Position {
		return false
	}

	for _, field := range fpl.StatFields {
		bound, found := c.Bounds[field.Key]
		if !found {
			continue
		}

		value := player.Stat(field.Key)
		if !value.Valid {
			// Unknown stats never exclude a player.
			continue
		}

		value = field.Apply(value)
		if bound.Min != "" && !(value.Float >= parseBound(bound.Min)) {
			return false
		}

		if bound.Max != "" && !(value.Float <= parseBound(bound.Max)) {
			return false
		}
	}

	return true
}

// Filter returns the players matching the criteria, preserving input order.
func Filter(players []fpl.Player, criteria Criteria) []fpl.Player {
	filtered := make([]fpl.Player, 0, len(players))
	for _, player := range players {
		if criteria.Matches(player) {
			filtered = append(filtered, player)
		}
	}

	return filtered
}

// Apply filters then sorts the players.
func Apply(players []fpl.Player, criteria Criteria, state SortState) []fpl.Player {
	return Sort(Filter(players, criteria), state)
}
