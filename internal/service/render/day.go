package render

import (
	"strings"

	"github.com/enerscope/enerscope/internal/domain"
)

// renderDay lays out the day-granularity report: global executive summary,
// daily trend, the typical 24-hour profile, then one review block per
// calendar day. Day reviews have no comparison panel and no heatmap; a day
// has no finer sub-unit to compare.
func (r *Renderer) renderDay(rep *domain.Report) *domain.PeriodBody {
	sum := rep.EnergyLoadSummary

	body := &domain.PeriodBody{
		SummaryTitle: "Executive Summary (Global)",
		QualityLine:  r.qualityLine(rep.DataQualityIndicators, ""),
		SummaryCards: []domain.StatCard{
			// The backend reports day-period totals in Wh; rescale to kWh.
			{Label: "Total Energy Consumed", Value: r.f.Number(sum.TotalEnergyConsumed/1000) + " KWh"},
			{Label: "Peak Load", Value: r.f.Number(sum.PeakLoad) + " kVA"},
			{Label: "Total Energy Cost", Value: r.f.Currency(sum.TotalEnergyCost)},
			{Label: "Load Factor", Value: sum.LoadFactor},
		},
		TrendChart:   r.dailyTrendChart(sum.ConsumptionSummary.DailyConsumption),
		ReviewsTitle: "Daily Performance Reviews",
		Reviews:      make([]domain.ReviewBlock, 0, len(rep.PerformanceReviews)),
	}

	if tp := sum.TypicalDayProfile; tp != nil {
		body.TypicalProfile = r.buildProfileChart("Typical 24-Hour Load Profile", "composed",
			tp.HourlyData, tp.PeakEvent, "Peak Event (Max Range)")
	}

	for _, rev := range rep.PerformanceReviews {
		cards := []domain.StatCard{
			{Label: "Daily Total", Value: r.f.Number(rev.SummaryCards.TotalEnergyConsumption) + " kWh"},
			{Label: "Daily Peak", Value: r.f.Number(rev.SummaryCards.PeakKVA) + " kVA"},
			{Label: "Daily Cost", Value: r.f.Currency(rev.SummaryCards.EnergyCost)},
		}
		body.Reviews = append(body.Reviews, r.buildReviewBlock(
			rev.FormattedDate+" Analysis", rev, cards, nil,
			reviewOptions{
				accent:         "#4caf50",
				profileTitle:   "Hourly Load Profile - " + rev.FormattedDate,
				profileKind:    "area",
				profileCaption: "Peak Load",
			},
		))
	}

	return body
}

func (r *Renderer) dailyTrendChart(points []domain.DailyConsumptionPoint) domain.BarChart {
	chart := domain.BarChart{
		Title:  "Daily Energy Consumption Trend",
		Color:  "#4caf50",
		Points: make([]domain.BarPoint, 0, len(points)),
	}
	for _, p := range points {
		// Tick labels keep only the weekday part of "Mon, Jan 2".
		label, _, _ := strings.Cut(p.FormattedDate, ",")
		chart.Points = append(chart.Points, domain.BarPoint{
			Label:     label,
			FullLabel: p.FormattedDate,
			Value:     p.ConsumptionKWh,
			Formatted: r.f.Number(p.ConsumptionKWh) + " kWh",
		})
	}
	return chart
}
