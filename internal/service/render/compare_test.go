package render

import (
	"math"
	"testing"

	"github.com/enerscope/enerscope/internal/domain"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	return NewRenderer(newTestFormatter(t))
}

func TestBuildComparisonPanel_NormalizesAgainstListMax(t *testing.T) {
	r := newTestRenderer(t)

	items := []domain.ComparisonItem{
		{Label: "Week 1", ValueKWh: 40},
		{Label: "Week 2", ValueKWh: 100},
		{Label: "Week 3", ValueKWh: 10},
	}

	panel := r.buildComparisonPanel("Comparison (kWh)", items, "Week 1")
	if panel == nil {
		t.Fatal("expected panel, got nil")
	}
	if len(panel.Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(panel.Bars))
	}

	wantRatios := []float64{0.4, 1.0, 0.1}
	for i, want := range wantRatios {
		if got := panel.Bars[i].Ratio; math.Abs(got-want) > 1e-9 {
			t.Errorf("bar %d ratio = %v, want %v", i, got, want)
		}
	}

	if !panel.Bars[0].Current {
		t.Error("expected Week 1 bar flagged as current")
	}
	if panel.Bars[1].Current || panel.Bars[2].Current {
		t.Error("expected only the matching bar flagged as current")
	}
}

func TestBuildComparisonPanel_AllZeroValues(t *testing.T) {
	r := newTestRenderer(t)

	items := []domain.ComparisonItem{
		{Label: "Week 1", ValueKWh: 0},
		{Label: "Week 2", ValueKWh: 0},
	}

	panel := r.buildComparisonPanel("Comparison (kWh)", items, "")
	for i, bar := range panel.Bars {
		if bar.Ratio != 0 {
			t.Errorf("bar %d ratio = %v, want 0 for all-zero list", i, bar.Ratio)
		}
	}
}

func TestBuildComparisonPanel_MaxBarIsFullWidth(t *testing.T) {
	r := newTestRenderer(t)

	items := []domain.ComparisonItem{
		{Label: "A", ValueKWh: 3},
		{Label: "B", ValueKWh: 12},
	}

	panel := r.buildComparisonPanel("t", items, "")
	if panel.Bars[1].Ratio != 1.0 {
		t.Errorf("max bar ratio = %v, want exactly 1.0", panel.Bars[1].Ratio)
	}
}

func TestBuildComparisonPanel_EmptyList(t *testing.T) {
	r := newTestRenderer(t)

	if panel := r.buildComparisonPanel("t", nil, ""); panel != nil {
		t.Errorf("expected nil panel for empty list, got %+v", panel)
	}
}

func TestBuildComparisonPanel_NoCurrentLabel(t *testing.T) {
	r := newTestRenderer(t)

	items := []domain.ComparisonItem{
		{Label: "Week 1", ValueKWh: 5},
		{Label: "Week 2", ValueKWh: 8},
	}

	panel := r.buildComparisonPanel("Week-on-Week (KWh)", items, "")
	for i, bar := range panel.Bars {
		if bar.Current {
			t.Errorf("bar %d flagged current with no current label", i)
		}
	}
}
