package render

import "github.com/enerscope/enerscope/internal/domain"

// buildComparisonPanel normalizes an ordered list of labeled magnitudes into
// proportional bars. Each list is scaled against its own maximum, never
// against the whole report, so different review blocks may use different
// scales. The maximum is computed once up front.
//
// currentLabel marks the bar matching the review's own label; pass "" for a
// uniform treatment. A nil panel is returned for an empty list.
func (r *Renderer) buildComparisonPanel(title string, items []domain.ComparisonItem, currentLabel string) *domain.ComparisonPanel {
	if len(items) == 0 {
		return nil
	}

	var max float64
	for _, it := range items {
		if it.ValueKWh > max {
			max = it.ValueKWh
		}
	}

	bars := make([]domain.ComparisonBar, 0, len(items))
	for _, it := range items {
		ratio := 0.0
		if max > 0 {
			ratio = it.ValueKWh / max
		}
		bars = append(bars, domain.ComparisonBar{
			Label:     it.Label,
			Value:     it.ValueKWh,
			Formatted: r.f.Number(it.ValueKWh),
			Ratio:     ratio,
			Current:   currentLabel != "" && it.Label == currentLabel,
		})
	}

	return &domain.ComparisonPanel{Title: title, Bars: bars}
}
