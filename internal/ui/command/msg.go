package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/leighmacdonald/fpl-tui/internal/query"
	"github.com/leighmacdonald/fpl-tui/internal/ui/input"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
)

var errExport = errors.New("failed to export chart")

// Source is implemented by datasource.Source.
type Source interface {
	Bootstrap(ctx context.Context) (fpl.Bootstrap, error)
	ElementSummary(ctx context.Context, playerID int) (fpl.ElementSummary, error)
}

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

func SetNextZone(currentZone model.KeyZone, dir input.Direction) tea.Cmd {
	return SetKeyZone(model.FilterZones.Next(currentZone, dir))
}

func SetKeyZone(zone model.KeyZone) tea.Cmd {
	return func() tea.Msg { return zone }
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// BootstrapMsg carries the result of the one time player listing fetch.
type BootstrapMsg struct {
	Bootstrap fpl.Bootstrap
	Err       error
}

func FetchBootstrap(ctx context.Context, source Source) tea.Cmd {
	return func() tea.Msg {
		bootstrap, err := source.Bootstrap(ctx)
		if err != nil {
			slog.Error("Failed to fetch bootstrap", slog.String("error", err.Error()))
		}

		return BootstrapMsg{Bootstrap: bootstrap, Err: err}
	}
}

// DetailMsg carries a player's history. It is keyed by the player id it was requested for
// so a late response can never be attributed to another player.
type DetailMsg struct {
	PlayerID int
	History  []fpl.GameweekEntry
	Err      error
}

func FetchDetail(ctx context.Context, source Source, playerID int) tea.Cmd {
	return func() tea.Msg {
		summary, err := source.ElementSummary(ctx, playerID)
		if err != nil {
			slog.Error("Failed to fetch element summary", slog.Int("player_id", playerID),
				slog.String("error", err.Error()))
		}

		return DetailMsg{PlayerID: playerID, History: summary.History, Err: err}
	}
}

type SelectPlayerMsg struct {
	PlayerID int
}

func SelectPlayer(playerID int) tea.Cmd {
	return func() tea.Msg { return SelectPlayerMsg{PlayerID: playerID} }
}

type BackMsg struct{}

func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

type SortMsg struct {
	Key string
}

func Sort(key string) tea.Cmd {
	return func() tea.Msg { return SortMsg{Key: key} }
}

type SearchMsg struct {
	Search string
}

type TeamMsg struct {
	Team string
}

type PositionMsg struct {
	Position string
}

type BoundMsg struct {
	Key   string
	Bound query.Bound
}

type ResetFiltersMsg struct{}

type ToggleMetricMsg struct {
	Key string
}

func ToggleMetric(key string) tea.Cmd {
	return func() tea.Msg { return ToggleMetricMsg{Key: key} }
}

// ExportChart renders the series to a png under dir, reporting the outcome as a StatusMsg.
func ExportChart(dir string, player fpl.Player, series []chart.Series) tea.Cmd {
	return func() tea.Msg {
		outPath := filepath.Join(dir, fmt.Sprintf("%d-%s.png", player.ID, strings.Join(strings.Fields(strings.ToLower(player.WebName)), "-")))
		if err := writeChart(outPath, player.Name(), series); err != nil {
			slog.Error("Failed to export chart", slog.String("path", outPath), slog.String("error", err.Error()))

			return StatusMsg{Message: err.Error(), Err: true}
		}

		return StatusMsg{Message: "Chart saved to " + outPath}
	}
}

func writeChart(outPath string, title string, series []chart.Series) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return errors.Join(err, errExport)
	}

	file, errCreate := os.Create(outPath)
	if errCreate != nil {
		return errors.Join(errCreate, errExport)
	}

	if err := chart.Render(file, series, chart.Options{Title: title, Format: chart.PNG}); err != nil {
		_ = file.Close()

		return errors.Join(err, errExport)
	}

	if err := file.Close(); err != nil {
		return errors.Join(err, errExport)
	}

	return nil
}
