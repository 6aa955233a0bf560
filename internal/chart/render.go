package chart

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrNoSeries = errors.New("no series to render")
	ErrNoData   = errors.New("series contain no known values")
	ErrRender   = errors.New("failed to render chart")
	ErrFormat   = errors.New("unknown image format")
)

type Format int

const (
	PNG Format = iota
	SVG
)

// ParseFormat maps a file extension style name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png", "":
		return PNG, nil
	case "svg":
		return SVG, nil
	default:
		return PNG, ErrFormat
	}
}

const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// Options controls the exported image.
type Options struct {
	Title  string
	Format Format
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	width, height := o.Width, o.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	return width, height
}

// Render draws the series as a line chart with the gameweek on the x axis. Each run of known
// values becomes its own line so missing gameweeks show as gaps.
func Render(w io.Writer, series []Series, opts Options) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	var (
		lines  []chart.Series
		named  []chart.Series
		bounds = newExtent()
		xRange = newExtent()
	)

	for _, current := range series {
		color := drawing.ColorFromHex(strings.TrimPrefix(current.Color, "#"))
		for idx, segment := range current.Segments() {
			xValues := make([]float64, len(segment))
			yValues := make([]float64, len(segment))
			for pointIdx, point := range segment {
				xValues[pointIdx] = float64(point.Round)
				yValues[pointIdx] = point.Value.Float
				xRange.add(xValues[pointIdx])
				bounds.add(yValues[pointIdx])
			}

			style := chart.Style{StrokeColor: color, StrokeWidth: 2, DotColor: color, DotWidth: 3}
			line := chart.ContinuousSeries{XValues: xValues, YValues: yValues, Style: style}
			if idx == 0 {
				line.Name = current.Label
				named = append(named, line)
			}

			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return ErrNoData
	}

	width, height := opts.size()
	graph := chart.Chart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{Name: "Gameweek", Range: xRange.rangeOf(1)},
		YAxis:      chart.YAxis{Name: "Value", Range: bounds.rangeOf(1)},
		Series:     lines,
	}

	// The legend only lists the first segment of each series.
	legend := graph
	legend.Series = named
	graph.Elements = []chart.Renderable{chart.Legend(&legend)}

	provider := chart.PNG
	if opts.Format == SVG {
		provider = chart.SVG
	}

	if err := graph.Render(provider, w); err != nil {
		return errors.Join(err, ErrRender)
	}

	return nil
}

type extent struct {
	low  float64
	high float64
}

func newExtent() *extent {
	return &extent{low: math.MaxFloat64, high: -math.MaxFloat64}
}

func (e *extent) add(value float64) {
	e.low = math.Min(e.low, value)
	e.high = math.Max(e.high, value)
}

// rangeOf widens a degenerate extent by pad on both sides, which the renderer otherwise
// rejects as a zero range.
func (e *extent) rangeOf(pad float64) *chart.ContinuousRange {
	if e.high > e.low {
		return &chart.ContinuousRange{Min: e.low, Max: e.high}
	}

	return &chart.ContinuousRange{Min: e.low - pad, Max: e.high + pad}
}
