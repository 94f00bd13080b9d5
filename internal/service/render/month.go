package render

import "github.com/enerscope/enerscope/internal/domain"

// renderMonth lays out the month-granularity report. Month reviews nest a
// week-on-week comparison inside each month block (month-vs-month at the
// top, week-vs-week within), but carry no heatmap.
func (r *Renderer) renderMonth(rep *domain.Report) *domain.PeriodBody {
	sum := rep.EnergyLoadSummary

	body := &domain.PeriodBody{
		SummaryTitle: "Executive Summary (Monthly Overview)",
		QualityLine:  r.qualityLine(rep.DataQualityIndicators, ""),
		SummaryCards: []domain.StatCard{
			{Label: "Total Energy (KWh)", Value: r.f.Number(sum.TotalEnergyConsumed)},
			{Label: "Peak Load", Value: r.f.Number(sum.PeakLoad) + " kVA"},
			{Label: "Total Cost", Value: r.f.Currency(sum.TotalEnergyCost)},
			{Label: "Load Factor", Value: sum.LoadFactor},
		},
		TrendChart:   r.monthlyTrendChart(sum.ConsumptionSummary.MonthlyConsumption),
		ReviewsTitle: "Monthly Performance Reviews",
		Reviews:      make([]domain.ReviewBlock, 0, len(rep.PerformanceReviews)),
	}

	for _, rev := range rep.PerformanceReviews {
		cards := []domain.StatCard{
			{Label: "Total KWh", Value: r.f.Number(rev.SummaryCards.TotalEnergyConsumption)},
			{Label: "Peak kVA", Value: r.f.Number(rev.SummaryCards.PeakKVA)},
			{Label: "Cost", Value: r.f.Currency(rev.SummaryCards.EnergyCost)},
			{Label: "Daily Avg KWh", Value: r.f.Decimal(rev.SummaryCards.DailyAvgEnergy)},
			{Label: "Weekday Avg KWh", Value: r.f.Decimal(rev.SummaryCards.WeekdayAvgEnergy)},
			{Label: "Weekend Avg KWh", Value: r.f.Decimal(rev.SummaryCards.WeekendAvgEnergy)},
		}
		body.Reviews = append(body.Reviews, r.buildReviewBlock(
			rev.MonthLabel, rev, cards, r.monthDailyChart(rev.DailyConsumptionChart),
			reviewOptions{
				accent:          "#9c27b0",
				profileTitle:    "Monthly 24-Hour Load Profile (Range & Average)",
				profileKind:     "composed",
				profileCaption:  "Peak Event",
				comparisonTitle: "Week-on-Week (KWh)",
				withAnalysis:    true,
			},
		))
	}

	return body
}

func (r *Renderer) monthlyTrendChart(points []domain.MonthlyConsumptionPoint) domain.BarChart {
	chart := domain.BarChart{
		Title:  "Monthly Consumption Trend",
		Color:  "#9c27b0",
		Points: make([]domain.BarPoint, 0, len(points)),
	}
	for _, p := range points {
		chart.Points = append(chart.Points, domain.BarPoint{
			Label:     p.MonthLabel,
			Value:     p.TotalConsumptionKWh,
			Formatted: r.f.Number(p.TotalConsumptionKWh) + " KWh",
		})
	}
	return chart
}

func (r *Renderer) monthDailyChart(points []domain.DailyChartPoint) *domain.BarChart {
	chart := &domain.BarChart{
		Title:  "Daily Consumption (kWh)",
		Color:  "#7b1fa2",
		Points: make([]domain.BarPoint, 0, len(points)),
	}
	for _, p := range points {
		chart.Points = append(chart.Points, domain.BarPoint{
			Label:     p.Date,
			FullLabel: p.FullDate,
			Value:     p.ConsumptionKWh,
			Formatted: r.f.Number(p.ConsumptionKWh) + " kWh",
		})
	}
	return chart
}
