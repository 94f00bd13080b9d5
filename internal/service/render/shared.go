package render

import (
	"fmt"

	"github.com/enerscope/enerscope/internal/domain"
)

// reviewOptions is the capability set distinguishing the three period
// schemas within the shared review-block layout. The block skeleton is the
// same for day, week and month; options switch the optional sections on.
type reviewOptions struct {
	accent          string
	profileTitle    string
	profileKind     string
	profileCaption  string
	comparisonTitle string // "" disables the comparison panel
	currentLabel    string
	withHeatmap     bool
	withAnalysis    bool
	decimalOps      bool // operating-hours consumption with two decimals
}

// buildReviewBlock lays out one sub-period review: header badge, cards,
// charts, then the sections enabled by opts. Missing optional payload fields
// are omitted, never an error.
func (r *Renderer) buildReviewBlock(title string, rev domain.Review, cards []domain.StatCard, daily *domain.BarChart, opts reviewOptions) domain.ReviewBlock {
	block := domain.ReviewBlock{
		Title:          title,
		Accent:         opts.accent,
		Comparison:     r.buildComparisonBadge(rev.ComparisonWithPrevious),
		Cards:          cards,
		DailyChart:     daily,
		OperatingHours: r.buildOperatingHours(rev.OperatingHours, opts.decimalOps),
	}

	if opts.comparisonTitle != "" {
		block.ComparisonPanel = r.buildComparisonPanel(opts.comparisonTitle, rev.WeekComparisonList, opts.currentLabel)
	}

	if rev.HourlyLoadProfile != nil {
		block.Profile = r.buildProfileChart(opts.profileTitle, opts.profileKind,
			rev.HourlyLoadProfile.GraphData, rev.HourlyLoadProfile.PeakEvent, opts.profileCaption)
	}

	if opts.withHeatmap {
		block.Heatmap = r.buildHeatmap(rev.ConsumptionPatternTable)
	}

	if opts.withAnalysis && rev.LoadProfileAnalysis != nil {
		block.ProfileAnalysis = &domain.ProfileAnalysisPanel{
			Weekday: domain.ProfileAnalysisCard{
				Title:   "Weekdays",
				Details: r.profileDetails(rev.LoadProfileAnalysis.Weekday),
			},
			Weekend: domain.ProfileAnalysisCard{
				Title:   "Weekends",
				Details: r.profileDetails(rev.LoadProfileAnalysis.Weekend),
			},
		}
	}

	return block
}

// buildComparisonBadge renders the "vs prev" chip, or nil when the review has
// no previous sub-period to compare against.
func (r *Renderer) buildComparisonBadge(c *domain.Comparison) *domain.ComparisonBadge {
	if c == nil {
		return nil
	}
	arrow := "▼"
	if c.Direction == "increase" {
		arrow = "▲"
	}
	return &domain.ComparisonBadge{
		Direction:  c.Direction,
		Arrow:      arrow,
		Percentage: c.Percentage,
		Text:       fmt.Sprintf("%s %s vs prev", arrow, c.Percentage),
	}
}

// buildProfileChart lays out the 24-hour range/average chart and places the
// peak marker at the payload's coordinates. The peak value is trusted as
// supplied; nothing is recomputed here.
func (r *Renderer) buildProfileChart(title, kind string, points []domain.ProfilePoint, peak domain.PeakEvent, captionPrefix string) *domain.ProfileChart {
	slots := make([]domain.ProfileChartSlot, 0, len(points))
	for _, p := range points {
		slots = append(slots, domain.ProfileChartSlot{
			Hour:        p.Hour,
			AverageLoad: p.AverageLoad,
			MinRange:    p.MinRange,
			MaxRange:    p.MaxRange,
		})
	}
	return &domain.ProfileChart{
		Title:  title,
		Kind:   kind,
		Points: slots,
		Peak: domain.PeakMarker{
			Hour:           peak.Hour,
			Value:          peak.Value,
			FormattedValue: r.f.Number(peak.Value),
			FormattedHour:  peak.FormattedHour,
		},
		Caption: fmt.Sprintf("%s: %s kVA at %s", captionPrefix, r.f.Number(peak.Value), peak.FormattedHour),
	}
}

func (r *Renderer) buildOperatingHours(oh domain.OperatingHours, decimal bool) domain.OperatingHoursPanel {
	return domain.OperatingHoursPanel{
		Daytime:   r.buildOperatingCard(oh.Daytime, decimal),
		Nighttime: r.buildOperatingCard(oh.Nighttime, decimal),
	}
}

func (r *Renderer) buildOperatingCard(w domain.OperatingWindow, decimal bool) domain.OperatingCard {
	consumption := r.f.Number(w.EnergyConsumption)
	if decimal {
		consumption = r.f.Decimal(w.EnergyConsumption)
	}
	return domain.OperatingCard{
		Label:       w.Label,
		Percentage:  w.Percentage,
		Consumption: consumption + " kWh",
		Details:     fmt.Sprintf("Avg: %s | Min: %s | Max: %s kVA", r.f.Number(w.AvgKVA), r.f.Number(w.MinKVA), r.f.Number(w.MaxKVA)),
	}
}

func (r *Renderer) profileDetails(s domain.ProfileStats) string {
	return fmt.Sprintf("Avg: %s | Min: %s | Max: %s kVA", r.f.Number(s.Average), r.f.Number(s.Min), r.f.Number(s.Max))
}

// qualityLine renders the provenance metadata verbatim under the summary
// title. prefix carries the optional period-specific lead-in.
func (r *Renderer) qualityLine(q domain.DataQualityIndicators, prefix string) string {
	return fmt.Sprintf("%sTotal Values: %d readings | Missing Values: %d readings | Percentage Missing: %s | Interval: %d mins",
		prefix, q.TotalValues, q.TotalMissing, q.PercentageMissing, q.MeasurementIntervalMinutes)
}
