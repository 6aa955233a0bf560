// Package fpl defines the Fantasy Premier League data model as returned by the public api.
package fpl

import (
	"strconv"
	"strings"
)

// Position is the upstream element_type.
type Position int

const (
	Goalkeeper Position = iota + 1
	Defender
	Midfielder
	Forward
)

// Positions lists every known position in display order.
var Positions = []Position{Goalkeeper, Defender, Midfielder, Forward} //nolint:gochecknoglobals

func (p Position) String() string {
	switch p {
	case Goalkeeper:
		return "Goalkeeper"
	case Defender:
		return "Defender"
	case Midfielder:
		return "Midfielder"
	case Forward:
		return "Forward"
	default:
		return "Unknown"
	}
}

// Player is a single upstream "element".
type Player struct {
	ID          int      `json:"id"`
	FirstName   string   `json:"first_name"`
	SecondName  string   `json:"second_name"`
	WebName     string   `json:"web_name"`
	Team        int      `json:"team"`
	ElementType Position `json:"element_type"`

	TotalPoints                   Value `json:"total_points"`
	NowCost                       Value `json:"now_cost"`
	Minutes                       Value `json:"minutes"`
	Form                          Value `json:"form"`
	PointsPerGame                 Value `json:"points_per_game"`
	GoalsScored                   Value `json:"goals_scored"`
	Assists                       Value `json:"assists"`
	CleanSheets                   Value `json:"clean_sheets"`
	StartsPer90                   Value `json:"starts_per_90"`
	CleanSheetsPer90              Value `json:"clean_sheets_per_90"`
	ExpectedGoalsPer90            Value `json:"expected_goals_per_90"`
	ExpectedAssistsPer90          Value `json:"expected_assists_per_90"`
	ExpectedGoalInvolvementsPer90 Value `json:"expected_goal_involvements_per_90"`
	ExpectedGoalsConcededPer90    Value `json:"expected_goals_conceded_per_90"`
	ChanceOfPlayingThisRound      Value `json:"chance_of_playing_this_round"`
	ChanceOfPlayingNextRound      Value `json:"chance_of_playing_next_round"`
}

// Name is the full "first second" name.
func (p Player) Name() string {
	return p.FirstName + " " + p.SecondName
}

// TeamKey is the team id as used by the team filter.
func (p Player) TeamKey() string {
	return strconv.Itoa(p.Team)
}

// PositionKey is the position id as used by the position filter.
func (p Player) PositionKey() string {
	return strconv.Itoa(int(p.ElementType))
}

// Stat resolves a stat field by its upstream key. Unknown keys are null.
func (p Player) Stat(key string) Value {
	switch key {
	case "total_points":
		return p.TotalPoints
	case "now_cost":
		return p.NowCost
	case "minutes":
		return p.Minutes
	case "form":
		return p.Form
	case "points_per_game":
		return p.PointsPerGame
	case "goals_scored":
		return p.GoalsScored
	case "assists":
		return p.Assists
	case "clean_sheets":
		return p.CleanSheets
	case "starts_per_90":
		return p.StartsPer90
	case "clean_sheets_per_90":
		return p.CleanSheetsPer90
	case "expected_goals_per_90":
		return p.ExpectedGoalsPer90
	case "expected_assists_per_90":
		return p.ExpectedAssistsPer90
	case "expected_goal_involvements_per_90":
		return p.ExpectedGoalInvolvementsPer90
	case "expected_goals_conceded_per_90":
		return p.ExpectedGoalsConcededPer90
	case "chance_of_playing_this_round":
		return p.ChanceOfPlayingThisRound
	case "chance_of_playing_next_round":
		return p.ChanceOfPlayingNextRound
	default:
		return Null
	}
}

type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// Teams maps a team id to its display name.
type Teams map[int]string

// Name returns the team name, or an empty string when the id is unknown.
func (t Teams) Name(teamID int) string {
	return t[teamID]
}

// Bootstrap is the subset of the bootstrap-static payload used by the dashboard.
type Bootstrap struct {
	Elements []Player `json:"elements"`
	Teams    []Team   `json:"teams"`
}

// TeamNames builds the id to name mapping.
func (b Bootstrap) TeamNames() Teams {
	teams := make(Teams, len(b.Teams))
	for _, team := range b.Teams {
		teams[team.ID] = team.Name
	}

	return teams
}

// GameweekEntry is one row of a player's element-summary history.
type GameweekEntry struct {
	Element      int    `json:"element"`
	Fixture      int    `json:"fixture"`
	OpponentTeam int    `json:"opponent_team"`
	WasHome      bool   `json:"was_home"`
	KickoffTime  string `json:"kickoff_time"`
	Round        int    `json:"round"`

	TotalPoints              Value `json:"total_points"`
	Minutes                  Value `json:"minutes"`
	GoalsScored              Value `json:"goals_scored"`
	Assists                  Value `json:"assists"`
	CleanSheets              Value `json:"clean_sheets"`
	GoalsConceded            Value `json:"goals_conceded"`
	OwnGoals                 Value `json:"own_goals"`
	Bonus                    Value `json:"bonus"`
	Creativity               Value `json:"creativity"`
	Threat                   Value `json:"threat"`
	Starts                   Value `json:"starts"`
	ExpectedGoals            Value `json:"expected_goals"`
	ExpectedAssists          Value `json:"expected_assists"`
	ExpectedGoalInvolvements Value `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    Value `json:"expected_goals_conceded"`
	Value                    Value `json:"value"`
	TransfersBalance         Value `json:"transfers_balance"`
	Selected                 Value `json:"selected"`
	TransfersIn              Value `json:"transfers_in"`
	TransfersOut             Value `json:"transfers_out"`
}

// Metric resolves a chart metric by its upstream key. Unknown keys are null.
func (g GameweekEntry) Metric(key string) Value {
	switch key {
	case "total_points":
		return g.TotalPoints
	case "minutes":
		return g.Minutes
	case "goals_scored":
		return g.GoalsScored
	case "assists":
		return g.Assists
	case "clean_sheets":
		return g.CleanSheets
	case "bonus":
		return g.Bonus
	case "creativity":
		return g.Creativity
	case "threat":
		return g.Threat
	case "expected_goals":
		return g.ExpectedGoals
	case "expected_assists":
		return g.ExpectedAssists
	case "expected_goal_involvements":
		return g.ExpectedGoalInvolvements
	case "expected_goals_conceded":
		return g.ExpectedGoalsConceded
	case "value":
		return g.Value
	default:
		return Null
	}
}

// ElementSummary is the subset of the element-summary payload used by the dashboard.
type ElementSummary struct {
	History []GameweekEntry `json:"history"`
}

// ParsePosition parses a position filter key, returning false for the empty "all" key
// or anything unrecognised.
func ParsePosition(key string) (Position, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, false
	}

	pos := Position(value)
	if pos < Goalkeeper || pos > Forward {
		return 0, false
	}

	return pos, true
}
