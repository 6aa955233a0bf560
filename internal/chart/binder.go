// Package chart binds a player's gameweek history to chart series and renders them.
package chart

import (
	"slices"

	"github.com/leighmacdonald/fpl-tui/internal/fpl"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// palette assigns every chart metric a fixed colour so a series keeps its colour across renders.
var palette = []string{ //nolint:gochecknoglobals
	"#5885A2", "#B8383B", "#4D7455", "#CF6A32", "#8650AC", "#FFD700",
	"#476291", "#38A89D", "#E05D9B", "#9A9A9A", "#7FB800",
}

// Color returns the colour assigned to a metric key.
func Color(key string) string {
	idx := slices.IndexFunc(fpl.ChartMetrics, func(field fpl.FieldDescriptor) bool {
		return field.Key == key
	})
	if idx < 0 {
		return palette[len(palette)-1]
	}

	return palette[idx%len(palette)]
}

// Selection is the ordered set of chart metric keys being drawn.
type Selection []string

// DefaultSelection is the initial selection, a single points series.
func DefaultSelection() Selection {
	return Selection{fpl.DefaultMetric}
}

// NewSelection builds a selection from keys, dropping unknown metrics and duplicates.
func NewSelection(keys ...string) Selection {
	selection := Selection{}
	for _, key := range keys {
		if _, found := fpl.ChartMetric(key); !found || selection.Contains(key) {
			continue
		}

		selection = append(selection, key)
	}

	return selection
}

func (s Selection) Contains(key string) bool {
	return slices.Contains(s, key)
}

// Toggle adds the metric when absent and removes it when present. A new slice is returned.
func (s Selection) Toggle(key string) Selection {
	if s.Contains(key) {
		return slices.DeleteFunc(slices.Clone(s), func(existing string) bool { return existing == key })
	}

	if _, found := fpl.ChartMetric(key); !found {
		return s
	}

	return append(slices.Clone(s), key)
}

// Point is a single gameweek observation. Unknown values are kept so they render as gaps.
type Point struct {
	Round int
	Value fpl.Value
}

// Series is one metric across a player's history.
type Series struct {
	Key    string
	Label  string
	Color  string
	Points []Point
}

// Bind produces one series per selected metric in selection order, with the metric
// transform applied to each value.
func Bind(history []fpl.GameweekEntry, selection Selection) []Series {
	series := make([]Series, 0, len(selection))
	for _, key := range selection {
		field, found := fpl.ChartMetric(key)
		if !found {
			continue
		}

		points := make([]Point, len(history))
		for idx, entry := range history {
			points[idx] = Point{Round: entry.Round, Value: field.Apply(entry.Metric(key))}
		}

		series = append(series, Series{
			Key:    field.Key,
			Label:  field.Label,
			Color:  Color(field.Key),
			Points: points,
		})
	}

	return series
}

// Values returns the known values of the series.
func (s Series) Values() []float64 {
	values := make([]float64, 0, len(s.Points))
	for _, point := range s.Points {
		if point.Value.Valid {
			values = append(values, point.Value.Float)
		}
	}

	return values
}

// Segments splits the series into runs of consecutive known points. Gaps are never
// interpolated across.
func (s Series) Segments() [][]Point {
	var (
		segments [][]Point
		current  []Point
	)

	for _, point := range s.Points {
		if !point.Value.Valid {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}

			continue
		}

		current = append(current, point)
	}

	if len(current) > 0 {
		segments = append(segments, current)
	}

	return segments
}

// Summary describes the known values of a series.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Total float64
}

func (s Series) Summary() Summary {
	values := s.Values()
	if len(values) == 0 {
		return Summary{}
	}

	return Summary{
		Count: len(values),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Mean:  stat.Mean(values, nil),
		Total: floats.Sum(values),
	}
}
