package chart_test

import (
	"bytes"
	"testing"

	"github.com/leighmacdonald/fpl-tui/internal/chart"
	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"github.com/stretchr/testify/require"
)

func history() []fpl.GameweekEntry {
	return []fpl.GameweekEntry{
		{Round: 1, TotalPoints: fpl.Some(2), Value: fpl.Some(55), Minutes: fpl.Some(90)},
		{Round: 2, TotalPoints: fpl.Null, Value: fpl.Some(56), Minutes: fpl.Some(45)},
		{Round: 3, TotalPoints: fpl.Some(12), Value: fpl.Some(57), Minutes: fpl.Some(90)},
		{Round: 4, TotalPoints: fpl.Some(6), Value: fpl.Some(57), Minutes: fpl.Some(0)},
	}
}

func TestSelection(t *testing.T) {
	selection := chart.DefaultSelection()
	require.Equal(t, chart.Selection{"total_points"}, selection)

	added := selection.Toggle("bonus")
	require.Equal(t, chart.Selection{"total_points", "bonus"}, added)
	require.Equal(t, chart.Selection{"total_points"}, selection)

	require.Equal(t, chart.Selection{"bonus"}, added.Toggle("total_points"))
	require.Equal(t, selection, selection.Toggle("not_a_metric"))
	require.Equal(t, chart.Selection{"value", "threat"}, chart.NewSelection("value", "bogus", "threat", "value"))
}

func TestBind(t *testing.T) {
	series := chart.Bind(history(), chart.Selection{"value", "total_points", "bogus"})
	require.Len(t, series, 2)

	require.Equal(t, "value", series[0].Key)
	require.Equal(t, "Value (£)", series[0].Label)
	require.InDelta(t, 5.5, series[0].Points[0].Value.Float, 0.0001)
	require.Equal(t, 4, series[0].Points[3].Round)

	require.Equal(t, "total_points", series[1].Key)
	require.False(t, series[1].Points[1].Value.Valid)
	require.Equal(t, chart.Color("total_points"), series[1].Color)
	require.NotEqual(t, series[0].Color, series[1].Color)
}

func TestBindEmpty(t *testing.T) {
	require.Empty(t, chart.Bind(history(), chart.Selection{}))

	series := chart.Bind(nil, chart.DefaultSelection())
	require.Len(t, series, 1)
	require.Empty(t, series[0].Points)
	require.Equal(t, chart.Summary{}, series[0].Summary())
}

func TestSegmentsAndSummary(t *testing.T) {
	series := chart.Bind(history(), chart.DefaultSelection())[0]

	segments := series.Segments()
	require.Len(t, segments, 2)
	require.Len(t, segments[0], 1)
	require.Len(t, segments[1], 2)

	summary := series.Summary()
	require.Equal(t, 3, summary.Count)
	require.InDelta(t, 2.0, summary.Min, 0.0001)
	require.InDelta(t, 12.0, summary.Max, 0.0001)
	require.InDelta(t, 20.0, summary.Total, 0.0001)
	require.InDelta(t, 20.0/3, summary.Mean, 0.0001)
}

func TestSparkline(t *testing.T) {
	series := chart.Bind(history(), chart.DefaultSelection())[0]
	require.Equal(t, "▁ █▄", chart.Sparkline(series, 0))
	require.Equal(t, "█▄", chart.Sparkline(series, 2))

	flat := chart.Bind(history(), chart.Selection{"value"})[0]
	flat.Points = flat.Points[:1]
	require.Equal(t, "▁", chart.Sparkline(flat, 10))
}

func TestRender(t *testing.T) {
	series := chart.Bind(history(), chart.Selection{"total_points", "value"})

	var pngBuf bytes.Buffer
	require.NoError(t, chart.Render(&pngBuf, series, chart.Options{Title: "Bukayo Saka", Format: chart.PNG}))
	require.True(t, bytes.HasPrefix(pngBuf.Bytes(), []byte("\x89PNG")))

	var svgBuf bytes.Buffer
	require.NoError(t, chart.Render(&svgBuf, series, chart.Options{Format: chart.SVG, Width: 400, Height: 200}))
	require.Contains(t, svgBuf.String(), "<svg")
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, chart.Render(&buf, nil, chart.Options{}), chart.ErrNoSeries)

	empty := chart.Bind([]fpl.GameweekEntry{{Round: 1}}, chart.DefaultSelection())
	require.ErrorIs(t, chart.Render(&buf, empty, chart.Options{}), chart.ErrNoData)

	single := chart.Bind(history()[:1], chart.DefaultSelection())
	require.NoError(t, chart.Render(&buf, single, chart.Options{}))
}

func TestParseFormat(t *testing.T) {
	format, err := chart.ParseFormat(".SVG")
	require.NoError(t, err)
	require.Equal(t, chart.SVG, format)

	format, err = chart.ParseFormat("png")
	require.NoError(t, err)
	require.Equal(t, chart.PNG, format)

	_, err = chart.ParseFormat("gif")
	require.ErrorIs(t, err, chart.ErrFormat)
}
