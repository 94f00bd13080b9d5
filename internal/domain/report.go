package domain

// Period is the aggregation granularity of a report. It is a closed set:
// anything outside the three known values renders the facility header only.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Known reports whether p is one of the three supported granularities.
func (p Period) Known() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// ReportRequest carries the parameters of one report-generation request as
// submitted by the client and forwarded to the analytics backend.
type ReportRequest struct {
	DataID       string  `json:"data_id"`
	CompanyName  string  `json:"company_name"`
	FacilityName string  `json:"facility_name"`
	Address      string  `json:"address"`
	Filename     string  `json:"filename"`
	TariffRate   float64 `json:"tariff_rate"`
}

// Report is the full analytics payload returned by the backend for one
// dataset/facility combination. It is an immutable snapshot: a new one
// replaces the previous wholesale, nothing is mutated in place.
type Report struct {
	Period                Period                `json:"period"`
	FacilityInfo          FacilityInfo          `json:"facility_info"`
	DataQualityIndicators DataQualityIndicators `json:"data_quality_indicators"`
	EnergyLoadSummary     EnergyLoadSummary     `json:"energy_load_summary"`
	PerformanceReviews    []Review              `json:"performance_reviews"`
}

type FacilityInfo struct {
	CompanyName  string `json:"company_name"`
	FacilityName string `json:"facility_name"`
	Address      string `json:"address"`
}

// DataQualityIndicators is provenance metadata rendered verbatim. The
// interval key is misspelled on the wire; the backend has always sent it
// that way.
type DataQualityIndicators struct {
	TotalValues                int    `json:"total_values"`
	TotalMissing               int    `json:"total_missing"`
	PercentageMissing          string `json:"percentage_missing"`
	MeasurementIntervalMinutes int    `json:"measurment_interval_minutes"`
}

type EnergyLoadSummary struct {
	TotalEnergyConsumed float64            `json:"total_energy_consumed"`
	PeakLoad            float64            `json:"peak_load"`
	TotalEnergyCost     float64            `json:"total_energy_cost"`
	LoadFactor          string             `json:"load_factor"`
	ConsumptionSummary  ConsumptionSummary `json:"consumption_summary"`
	// TypicalDayProfile is only present on day-period reports.
	TypicalDayProfile *TypicalDayProfile `json:"typical_day_profile,omitempty"`
}

// ConsumptionSummary holds the period-specific trend series; only the slice
// matching the report period is populated.
type ConsumptionSummary struct {
	DailyConsumption   []DailyConsumptionPoint   `json:"daily_consumption,omitempty"`
	WeeklyConsumption  []WeeklyConsumptionPoint  `json:"weekly_consumption,omitempty"`
	MonthlyConsumption []MonthlyConsumptionPoint `json:"monthly_consumption,omitempty"`
}

type DailyConsumptionPoint struct {
	FormattedDate  string  `json:"formatted_date"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
}

type WeeklyConsumptionPoint struct {
	WeekLabel           string  `json:"week_label"`
	TotalConsumptionKWh float64 `json:"total_consumption_kwh"`
}

type MonthlyConsumptionPoint struct {
	MonthLabel          string  `json:"month_label"`
	TotalConsumptionKWh float64 `json:"total_consumption_kwh"`
}

// TypicalDayProfile is the day-report global 24-hour profile. Its series key
// differs from the per-review profiles (hourly_data vs graph_data).
type TypicalDayProfile struct {
	HourlyData []ProfilePoint `json:"hourly_data"`
	PeakEvent  PeakEvent      `json:"peak_event"`
}

// HourlyProfile is a 24-point load profile with a marked peak event. The
// peak coordinates are trusted as-is; the renderer only places the marker.
type HourlyProfile struct {
	GraphData []ProfilePoint `json:"graph_data"`
	PeakEvent PeakEvent      `json:"peak_event"`
}

type ProfilePoint struct {
	Hour        int     `json:"hour"`
	AverageLoad float64 `json:"average_load"`
	MinRange    float64 `json:"min_range"`
	MaxRange    float64 `json:"max_range"`
}

type PeakEvent struct {
	Hour          int     `json:"hour"`
	Value         float64 `json:"value"`
	FormattedHour string  `json:"formatted_hour"`
}

// Review is one sub-period's detailed breakdown. The three period variants
// share this shape; fields absent for a given period stay nil.
type Review struct {
	// Exactly one of these labels is set, matching the report period.
	FormattedDate string `json:"formatted_date,omitempty"`
	WeekLabel     string `json:"week_label,omitempty"`
	FullWeekLabel string `json:"full_week_label,omitempty"`
	MonthLabel    string `json:"month_label,omitempty"`

	SummaryCards           SummaryCards   `json:"summary_cards"`
	ComparisonWithPrevious *Comparison    `json:"comparison_with_previous,omitempty"`
	OperatingHours         OperatingHours `json:"operating_hours"`
	HourlyLoadProfile      *HourlyProfile `json:"hourly_load_profile,omitempty"`

	// Week and month reviews only.
	DailyConsumptionChart []DailyChartPoint    `json:"daily_consumption_chart,omitempty"`
	WeekComparisonList    []ComparisonItem     `json:"week_comparison_list,omitempty"`
	LoadProfileAnalysis   *LoadProfileAnalysis `json:"load_profile_analysis,omitempty"`

	// Week reviews only.
	ConsumptionPatternTable PatternTable `json:"consumption_pattern_table,omitempty"`
}

type SummaryCards struct {
	TotalEnergyConsumption float64 `json:"total_energy_consumption"`
	PeakKVA                float64 `json:"peak_kva"`
	EnergyCost             float64 `json:"energy_cost"`
	DailyAvgEnergy         float64 `json:"daily_avg_energy"`
	WeekdayAvgEnergy       float64 `json:"weekday_avg_energy"`
	WeekendAvgEnergy       float64 `json:"weekend_avg_energy"`
}

// Comparison is the change versus the previous sub-period. Absent on the
// first review of a sequence.
type Comparison struct {
	Direction  string `json:"direction"` // increase | decrease
	Percentage string `json:"percentage"`
}

type OperatingHours struct {
	Daytime   OperatingWindow `json:"daytime"`
	Nighttime OperatingWindow `json:"nighttime"`
}

type OperatingWindow struct {
	Label             string  `json:"label"`
	Percentage        string  `json:"percentage"`
	EnergyConsumption float64 `json:"energy_consumption"`
	AvgKVA            float64 `json:"avg_kva"`
	MinKVA            float64 `json:"min_kva"`
	MaxKVA            float64 `json:"max_kva"`
}

// DailyChartPoint backs the per-review daily bar chart. Week reviews label
// points by day name, month reviews by date with a full-date tooltip label.
type DailyChartPoint struct {
	Day            string  `json:"day,omitempty"`
	Date           string  `json:"date,omitempty"`
	FullDate       string  `json:"full_date,omitempty"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
}

// ComparisonItem is one labeled magnitude in a comparison list.
type ComparisonItem struct {
	Label    string  `json:"label"`
	ValueKWh float64 `json:"value_kwh"`
}

type LoadProfileAnalysis struct {
	Weekday ProfileStats `json:"weekday"`
	Weekend ProfileStats `json:"weekend"`
}

type ProfileStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// PatternTable maps day name -> hour-of-day -> consumption. It is sparse:
// missing day/hour cells mean zero. encoding/json accepts the numeric string
// hour keys the backend sends.
type PatternTable map[string]map[int]float64
