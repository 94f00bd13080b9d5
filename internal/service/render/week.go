package render

import (
	"fmt"

	"github.com/enerscope/enerscope/internal/domain"
)

// renderWeek lays out the week-granularity report. Week reviews carry the
// full schema: comparison panel against sibling weeks, the consumption
// heatmap, and the weekday/weekend load analysis.
func (r *Renderer) renderWeek(rep *domain.Report) *domain.PeriodBody {
	sum := rep.EnergyLoadSummary

	body := &domain.PeriodBody{
		SummaryTitle: "Executive Summary (Weekly Overview)",
		QualityLine: r.qualityLine(rep.DataQualityIndicators,
			fmt.Sprintf("Total Weeks: %d weeks | ", len(rep.PerformanceReviews))),
		SummaryCards: []domain.StatCard{
			{Label: "Total Energy (kWh)", Value: r.f.Decimal(sum.TotalEnergyConsumed)},
			{Label: "Peak Load", Value: r.f.Number(sum.PeakLoad) + " kVA"},
			{Label: "Total Cost", Value: r.f.Currency(sum.TotalEnergyCost)},
			{Label: "Load Factor", Value: sum.LoadFactor},
		},
		TrendChart:   r.weeklyTrendChart(sum.ConsumptionSummary.WeeklyConsumption),
		ReviewsTitle: "Weekly Performance Reviews",
		Reviews:      make([]domain.ReviewBlock, 0, len(rep.PerformanceReviews)),
	}

	for _, rev := range rep.PerformanceReviews {
		cards := []domain.StatCard{
			{Label: "Total kWh", Value: r.f.Decimal(rev.SummaryCards.TotalEnergyConsumption)},
			{Label: "Peak kVA", Value: r.f.Number(rev.SummaryCards.PeakKVA)},
			{Label: "Cost", Value: r.f.Currency(rev.SummaryCards.EnergyCost)},
			{Label: "Daily Avg", Value: r.f.Decimal(rev.SummaryCards.DailyAvgEnergy)},
			{Label: "Weekday Avg", Value: r.f.Decimal(rev.SummaryCards.WeekdayAvgEnergy)},
			{Label: "Weekend Avg", Value: r.f.Decimal(rev.SummaryCards.WeekendAvgEnergy)},
		}
		body.Reviews = append(body.Reviews, r.buildReviewBlock(
			rev.FullWeekLabel, rev, cards, r.weekDailyChart(rev.DailyConsumptionChart),
			reviewOptions{
				accent:          "#2196f3",
				profileTitle:    "Weekly 24-Hour Load Profile",
				profileKind:     "composed",
				profileCaption:  "Peak Event",
				comparisonTitle: "Comparison (kWh)",
				currentLabel:    rev.WeekLabel,
				withHeatmap:     true,
				withAnalysis:    true,
				decimalOps:      true,
			},
		))
	}

	return body
}

func (r *Renderer) weeklyTrendChart(points []domain.WeeklyConsumptionPoint) domain.BarChart {
	chart := domain.BarChart{
		Title:  "Weekly Consumption Trend",
		Color:  "#2196f3",
		Points: make([]domain.BarPoint, 0, len(points)),
	}
	for _, p := range points {
		chart.Points = append(chart.Points, domain.BarPoint{
			Label:     p.WeekLabel,
			Value:     p.TotalConsumptionKWh,
			Formatted: r.f.Decimal(p.TotalConsumptionKWh) + " kWh",
		})
	}
	return chart
}

func (r *Renderer) weekDailyChart(points []domain.DailyChartPoint) *domain.BarChart {
	chart := &domain.BarChart{
		Title:  "Daily Consumption (kWh)",
		Color:  "#4caf50",
		Points: make([]domain.BarPoint, 0, len(points)),
	}
	for _, p := range points {
		chart.Points = append(chart.Points, domain.BarPoint{
			Label:     p.Day,
			Value:     p.ConsumptionKWh,
			Formatted: r.f.Number(p.ConsumptionKWh) + " kWh",
		})
	}
	return chart
}
