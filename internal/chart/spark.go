package chart

import (
	"math"
	"strings"
)

var sparkTicks = []rune("▁▂▃▄▅▆▇█") //nolint:gochecknoglobals

// Sparkline renders one glyph per gameweek scaled between the series minimum and maximum.
// Unknown values are rendered as a space. A positive width keeps only the most recent gameweeks.
func Sparkline(series Series, width int) string {
	summary := series.Summary()

	points := series.Points
	if width > 0 && len(points) > width {
		points = points[len(points)-width:]
	}

	var builder strings.Builder
	for _, point := range points {
		if !point.Value.Valid {
			builder.WriteRune(' ')

			continue
		}

		idx := 0
		if summary.Max > summary.Min {
			scaled := (point.Value.Float - summary.Min) / (summary.Max - summary.Min)
			idx = int(math.Round(scaled * float64(len(sparkTicks)-1)))
		}

		builder.WriteRune(sparkTicks[idx])
	}

	return builder.String()
}
