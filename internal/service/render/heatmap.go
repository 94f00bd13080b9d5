package render

import (
	"fmt"
	"strconv"

	"github.com/enerscope/enerscope/internal/domain"
)

// The heatmap grid is always dense: 7 day rows by 24 hour columns, with
// absent source cells rendered as zero.
var heatmapDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	heatmapHours = 24
	// Cells above this intensity get a light label for legibility.
	lightTextThreshold = 0.6
)

// buildHeatmap maps the sparse day-by-hour consumption table onto the fixed
// 168-cell grid. Every present value is scanned for the table-wide maximum,
// then each cell's intensity is value/max (0 when the table is all zero).
func (r *Renderer) buildHeatmap(table domain.PatternTable) *domain.Heatmap {
	var max float64
	for _, hours := range table {
		for _, v := range hours {
			if v > max {
				max = v
			}
		}
	}

	hours := make([]int, heatmapHours)
	for h := range hours {
		hours[h] = h
	}

	cells := make([]domain.HeatmapCell, 0, len(heatmapDays)*heatmapHours)
	for _, day := range heatmapDays {
		for h := 0; h < heatmapHours; h++ {
			v := table[day][h]
			intensity := 0.0
			if max > 0 {
				intensity = v / max
			}
			cells = append(cells, domain.HeatmapCell{
				Day:       day,
				Hour:      h,
				Value:     v,
				Intensity: intensity,
				Color:     heatColor(intensity),
				LightText: intensity > lightTextThreshold,
				Tooltip:   r.f.Number(v) + " kWh",
			})
		}
	}

	return &domain.Heatmap{
		Days:  append([]string(nil), heatmapDays...),
		Hours: hours,
		Cells: cells,
	}
}

// heatColor maps intensity onto the single-hue green scale, alpha = intensity.
func heatColor(intensity float64) string {
	return fmt.Sprintf("rgba(76, 175, 80, %s)", strconv.FormatFloat(intensity, 'f', -1, 64))
}
